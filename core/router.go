package core

// ScreenStack holds open overlays. The top screen receives keys first.
type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1:len(s.items)-1]
	return last
}

func (s *ScreenStack) ReplaceTop(screen Screen) {
	if len(s.items) == 0 || screen == nil {
		return
	}
	items := make([]Screen, len(s.items))
	copy(items, s.items)
	items[len(items)-1] = screen
	s.items = items
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}
