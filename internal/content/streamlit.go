package content

import "github.com/jask/devsheet/internal/page"

func streamlitBasics(out page.Surface) {
	out.Header("Streamlit Basics")

	out.Subheader("Installation and Import")
	out.Code("bash", `
		# Install Streamlit
		$ pip install streamlit

		# Import in your script
		import streamlit as st
	`)

	out.Subheader("Running Streamlit Apps")
	out.Code("bash", `
		# Run a Streamlit app
		$ streamlit run your_script.py

		# Show Streamlit commands
		$ streamlit --help

		# Clear cache
		$ streamlit cache clear

		# View Streamlit version
		$ streamlit --version
	`)

	out.Subheader("Display Text and Data")
	out.Code("python", `
		# Display text
		st.text('Fixed width text')
		st.markdown('_Markdown_')
		st.caption('Balloons. Hundreds of them...')
		st.latex(r''' e^{i\pi} + 1 = 0 ''')
		st.write('Most objects') # df, err, func, keras!
		st.write(['st', 'is <', 3]) # see *
		st.title('My title')
		st.header('My header')
		st.subheader('My sub')
		st.code('for i in range(8): foo()')

		# Display data
		st.dataframe(my_dataframe)
		st.table(data.iloc[0:10])
		st.json({'foo':'bar','fu':'ba'})
		st.metric(label="Temp", value="273 K", delta="1.2 K")
	`)

	out.Subheader("Display Media")
	out.Code("python", `
		st.image('./image.png')
		st.audio(data)
		st.video(data)
	`)

	out.Subheader("Layouts and Containers")
	out.Code("python", `
		# Create columns
		col1, col2 = st.columns(2)
		with col1:
		    st.write('Column 1')
		with col2:
		    st.write('Column 2')

		# Create tabs
		tab1, tab2 = st.tabs(["Tab 1", "Tab 2"])
		with tab1:
		    st.write("This is tab 1")
		with tab2:
		    st.write("This is tab 2")

		# Create expandable sections
		with st.expander("Click to expand"):
		    st.write("This content is hidden by default")
	`)

	out.Subheader("Input Widgets")
	out.Code("python", `
		st.button('Hit me')
		st.data_editor('Edit data', data)
		st.checkbox('Check me out')
		st.radio('Pick one:', ['nose','ear'])
		st.selectbox('Select', [1,2,3])
		st.multiselect('Multiselect', [1,2,3])
		st.slider('Slide me', min_value=0, max_value=10)
		st.select_slider('Slide to select', options=[1,'2'])
		st.text_input('Enter some text')
		st.number_input('Enter a number')
		st.text_area('Area for textual entry')
		st.date_input('Date input')
		st.time_input('Time entry')
		st.file_uploader('File uploader')
		st.color_picker('Pick a color')
	`)

	out.Subheader("Control Flow")
	out.Code("python", `
		# Stop execution
		st.stop()

		# Rerun script
		st.experimental_rerun()

		# Group widgets
		with st.form(key='my_form'):
		    username = st.text_input('Username')
		    password = st.text_input('Password')
		    st.form_submit_button('Login')
	`)
}

func streamlitAdvanced(out page.Surface) {
	out.Header("Streamlit Advanced Features")

	out.Subheader("Caching")
	out.Code("python", `
		# Cache data objects
		@st.cache_data
		def fetch_and_clean_data(url):
		    # Fetch data from URL here, and then clean it up.
		    return data

		# Cache resource-intensive computations
		@st.cache_resource
		def load_large_file():
		    with open("large_file.csv", "r") as f:
		        data = f.read()
		    return data
	`)

	out.Subheader("Session State")
	out.Code("python", `
		# Initialize session state
		if 'count' not in st.session_state:
		    st.session_state.count = 0

		# Increment counter
		if st.button('Increment'):
		    st.session_state.count += 1

		# Display count
		st.write('Count = ', st.session_state.count)
	`)

	out.Subheader("Custom Components")
	out.Code("python", `
		from streamlit_custom_component import declare_component

		my_component = declare_component("my_component")

		# Use the custom component
		component_value = my_component(greeting="Hello", name="Streamlit")
	`)

	out.Subheader("Theming")
	out.Code("toml", `
		# In your .streamlit/config.toml file:
		[theme]
		primaryColor="#F63366"
		backgroundColor="#FFFFFF"
		secondaryBackgroundColor="#F0F2F6"
		textColor="#262730"
		font="sans serif"
	`)

	out.Subheader("Performance Optimization")
	out.Code("python", `
		# Use st.empty for dynamic content
		placeholder = st.empty()

		# Update the placeholder
		with placeholder.container():
		    st.write("This content can be dynamically updated")

		# Clear the placeholder
		placeholder.empty()
	`)

	out.Subheader("Error Handling and Debugging")
	out.Code("python", `
		import traceback

		try:
		    # Your code here
		    result = risky_operation()
		except Exception as e:
		    st.error(f"An error occurred: {e}")
		    st.text(traceback.format_exc())
	`)

	out.Subheader("Streamlit Components")
	out.Code("python", `
		# Chat messages
		with st.chat_message("user"):
		    st.write("Hello 👋")

		# Chat input
		prompt = st.chat_input("Say something")
		if prompt:
		    st.write(f"User said: {prompt}")

		# Progress and status
		with st.spinner('In progress'):
		    time.sleep(3)
		st.success('Done!')

		progress_bar = st.progress(0)
		for i in range(100):
		    progress_bar.progress(i + 1)
		    time.sleep(0.1)

		st.balloons()
		st.snow()
		st.toast('Mr Stay-Puft')
	`)
}
