// Package content holds the cheat sheet itself: the topic list, in sidebar
// order, and one renderer per topic.
package content

import (
	"fmt"

	"github.com/jask/devsheet/internal/catalog"
	"github.com/jask/devsheet/internal/page"
)

const (
	AppTitle = "Developer's Cheat Sheet"
	NavTitle = "Navigation"
	Credit   = "Developed by Anders Barane"
)

type TopicID int

const (
	StreamlitBasics TopicID = iota
	StreamlitAdvanced
	PythonTips
	VSCodeShortcuts
	GitHubCommands
	ReplitTips
	APIIntegration
	GitHubModels
	PerplexityAPI
	AdvancedAnthropicAPI
	AdvancedOpenAIAPI
	KoladaAPI
	DeploymentGuide
	DataVisualization
	BestPractices
	GitHubIntegrationGuide

	topicCount
)

type topic struct {
	label  string
	render catalog.Renderer
}

// topics is indexed by TopicID; a missing entry leaves a nil renderer, which
// Registry rejects at startup.
var topics = [topicCount]topic{
	StreamlitBasics:        {"Streamlit Basics", streamlitBasics},
	StreamlitAdvanced:      {"Streamlit Advanced", streamlitAdvanced},
	PythonTips:             {"Python Tips", pythonTips},
	VSCodeShortcuts:        {"VS Code Shortcuts", vscodeShortcuts},
	GitHubCommands:         {"GitHub Commands", githubCommands},
	ReplitTips:             {"Replit Tips", replitTips},
	APIIntegration:         {"API Integration", apiIntegration},
	GitHubModels:           {"GitHub Models", githubModels},
	PerplexityAPI:          {"Perplexity API", perplexityAPI},
	AdvancedAnthropicAPI:   {"Advanced Anthropic API", advancedAnthropicAPI},
	AdvancedOpenAIAPI:      {"Advanced OpenAI API", advancedOpenAIAPI},
	KoladaAPI:              {"Kolada API", koladaAPI},
	DeploymentGuide:        {"Deployment Guide", deploymentGuide},
	DataVisualization:      {"Data Visualization", dataVisualization},
	BestPractices:          {"Best Practices", bestPractices},
	GitHubIntegrationGuide: {"GitHub Integration Guide", githubIntegrationGuide},
}

func (id TopicID) String() string {
	if id < 0 || id >= topicCount {
		return fmt.Sprintf("TopicID(%d)", int(id))
	}
	return topics[id].label
}

// Topics returns every topic in sidebar order.
func Topics() []TopicID {
	out := make([]TopicID, 0, topicCount)
	for id := range topicCount {
		out = append(out, id)
	}
	return out
}

// Registry builds the sealed registry for all topics.
func Registry() (*catalog.Registry, error) {
	reg := catalog.NewRegistry()
	for _, id := range Topics() {
		t := topics[id]
		if err := reg.Register(t.label, t.render); err != nil {
			return nil, fmt.Errorf("topic %d: %w", int(id), err)
		}
	}
	reg.Seal()
	return reg, nil
}

// Render writes one topic to out.
func Render(id TopicID, out page.Surface) {
	if id < 0 || id >= topicCount || topics[id].render == nil {
		return
	}
	topics[id].render(out)
}
