package content

import "github.com/jask/devsheet/internal/page"

func koladaAPI(out page.Surface) {
	out.Header("Kolada API Usage Guide")

	out.Markdown(`
		The Kolada API provides access to standardized key performance indicators (KPIs) for Swedish municipalities and organizational units. This guide covers how to interact with the Kolada API, handle its data, and apply best practices.
	`)

	out.Subheader("API Overview")
	out.Markdown(`
		- **Municipal Data**: KPIs for Swedish municipalities (kommuner) and county councils (landsting), covering approximately 6500 KPIs.
		- **Organizational Unit Data**: KPIs for various organizational units (schools, hospitals, etc.), though with a smaller dataset.
		- Each KPI is measured annually and may be divided by gender (female, male, total).
		- Data is structured along four main dimensions: KPI, Municipality/Organizational Unit, Year, and Gender.
	`)

	out.Subheader("Common Data Structure")
	out.Code("json", `
		{
		    "kpi": "<KPI ID>",
		    "municipality": "<Municipality ID>",
		    "period": "<Year>",
		    "values": [
		       {
		         "count": <Number of Contributors>,
		         "gender": "T|K|F",  // T = Total, K = Male, F = Female
		         "status": "<Status>",
		         "value": <KPI Value> or null
		       }
		    ]
		}
	`)

	out.Subheader("Example API Calls")
	out.Code("python", `
		import requests

		# KPI data for a specific municipality and year
		url = "http://api.kolada.se/v2/data/kpi/N00945/municipality/1860/year/2009"

		# Municipality metadata
		url = "http://api.kolada.se/v2/municipality?title=Stockholm"

		# Organizational Unit data
		url = "http://api.kolada.se/v2/oudata/kpi/N15033/ou/V15E144001301/year/2009"

		response = requests.get(url)
		if response.status_code == 200:
		    data = response.json()
		    # Process the data here
		else:
		    print(f"Error: {response.status_code}")
	`)

	out.Subheader("Handling Paginated Data")
	out.Code("python", `
		def fetch_all_data(url):
		    all_data = []
		    while url:
		        response = requests.get(url)
		        if response.status_code == 200:
		            json_response = response.json()
		            all_data.extend(json_response['values'])
		            url = json_response.get('next_page')
		        else:
		            print(f"Error: {response.status_code}")
		            break
		    return all_data
	`)

	out.Subheader("Best Practices for Data Handling")
	out.Markdown("1. **Convert Period Field to Integer**:")
	out.Code("python", `data['period'] = data['period'].astype(int)`)
	out.Markdown("2. **Format Numeric Values to Two Decimal Places**:")
	out.Code("python", `formatted_value = f"{value:.2f}"`)
	out.Markdown("3. **Map Municipality IDs to Human-Readable Names**:")
	out.Code("python", `
		municipality_mapping = {
		  "0114": "Upplands Väsby",
		  "0180": "Stockholm",
		  # Add more mappings as needed
		}
		data['municipality_name'] = data['municipality_id'].map(municipality_mapping)
	`)

	out.Subheader("Data Processing Example")
	out.Code("python", `
		import pandas as pd

		def process_kolada_data(raw_data):
		    df = pd.DataFrame(raw_data)

		    # Convert period to integer
		    df['period'] = df['period'].astype(int)

		    # Format KPI values to 2 decimal places
		    df['value'] = df['value'].apply(lambda x: f"{x:.2f}" if x is not None else x)

		    # Map municipality IDs to names
		    municipality_mapping = {
		        "1860": "Lund",
		        "0180": "Stockholm",
		        # Add more mappings as needed
		    }
		    df['municipality_name'] = df['municipality'].map(municipality_mapping)

		    return df

		# Usage
		raw_data = fetch_all_data("http://api.kolada.se/v2/data/kpi/N00945/municipality/1860/year/2009")
		processed_data = process_kolada_data(raw_data)
	`)

	out.Subheader("Visualization Example")
	out.Code("python", `
		import matplotlib.pyplot as plt

		def plot_kpi_data(data, title="KPI Over Time"):
		    plt.figure(figsize=(10, 6))
		    plt.bar(data['period'], data['value'])
		    plt.title(title)
		    plt.xlabel("Year")
		    plt.ylabel("KPI Value")
		    plt.xticks(rotation=45)
		    plt.tight_layout()
		    st.pyplot(plt)

		# Usage
		plot_kpi_data(processed_data, "Population Growth in Lund")
	`)

	out.Subheader("Best Practices")
	out.Markdown(`
		1. Always handle API errors and implement proper error handling.
		2. Use appropriate data types (e.g., integers for years, floats for KPI values).
		3. Implement caching for frequently accessed data to reduce API calls.
		4. Respect API rate limits and implement backoff strategies if necessary.
		5. Keep your municipality and KPI mappings up-to-date.
		6. Use pandas for efficient data manipulation and analysis.
		7. Provide clear visualizations to make the data more accessible.
	`)
}

func deploymentGuide(out page.Surface) {
	out.Header("Deployment Guide")

	out.Subheader("Deploying to Streamlit Community Cloud")
	out.Markdown(`
		1. Push your code to a GitHub repository
		2. Sign up for [Streamlit Community Cloud](https://streamlit.io/cloud)
		3. Connect your GitHub account
		4. Select the repository and branch to deploy
		5. Configure your app settings (Python version, packages, etc.)
		6. Deploy your app
	`)

	out.Subheader("Deploying to Heroku")
	out.Markdown("1. Sign up for a [Heroku account](https://signup.heroku.com/)\n" +
		"2. Install the Heroku CLI\n" +
		"3. Create a `Procfile` in your project root:")
	out.Code("text", "web: streamlit run app.py")
	out.Markdown("4. Create a `requirements.txt` file:")
	out.Code("bash", "pip freeze > requirements.txt")
	out.Markdown("5. Initialize a Git repository (if not already done)\n" +
		"6. Create a new Heroku app:")
	out.Code("bash", "heroku create your-app-name")
	out.Markdown("7. Set environment variables:")
	out.Code("bash", "heroku config:set OPENAI_API_KEY=your_api_key_here")
	out.Markdown("8. Deploy your app:")
	out.Code("bash", "git push heroku main")

	out.Subheader("Managing Environment Variables")
	out.Markdown("- For local development, use a `.env` file and `python-dotenv`\n" +
		"- For Streamlit Community Cloud, use the Secrets Management feature\n" +
		"- For Heroku, use config vars in the app settings or Heroku CLI")
}

func dataVisualization(out page.Surface) {
	out.Header("Data Visualization in Streamlit")

	out.Subheader("Using Matplotlib")
	out.Code("python", `
		import matplotlib.pyplot as plt
		import numpy as np

		fig, ax = plt.subplots()
		x = np.linspace(0, 10, 100)
		ax.plot(x, np.sin(x))
		st.pyplot(fig)
	`)

	out.Subheader("Using Plotly")
	out.Code("python", `
		import plotly.express as px
		import pandas as pd

		df = pd.DataFrame({
		    'x': [1, 2, 3, 4],
		    'y': [10, 11, 12, 13]
		})
		fig = px.scatter(df, x='x', y='y')
		st.plotly_chart(fig)
	`)

	out.Subheader("Using Altair")
	out.Code("python", `
		import altair as alt
		import pandas as pd

		df = pd.DataFrame({
		    'x': [1, 2, 3, 4],
		    'y': [10, 11, 12, 13]
		})
		chart = alt.Chart(df).mark_circle().encode(
		    x='x',
		    y='y'
		)
		st.altair_chart(chart)
	`)
}

func bestPractices(out page.Surface) {
	out.Header("Best Practices for Streamlit Development")

	out.Subheader("Code Organization")
	out.Markdown(`
		- Use functions to organize your code
		- Separate data loading, processing, and visualization logic
		- Use config files for app settings
	`)

	out.Subheader("Performance Optimization")
	out.Markdown(`
		- Use caching for expensive computations
		- Optimize data loading and processing
		- Use efficient data structures (e.g., NumPy arrays for numerical computations)
	`)

	out.Subheader("User Experience")
	out.Markdown(`
		- Provide clear instructions and tooltips
		- Use appropriate widgets for input
		- Implement error handling and provide user feedback
		- Design responsive layouts
	`)

	out.Subheader("Security")
	out.Markdown(`
		- Never hardcode sensitive information (use st.secrets or environment variables)
		- Validate and sanitize user inputs
		- Use HTTPS for deployed apps
	`)

	out.Subheader("Testing")
	out.Markdown(`
		- Write unit tests for your functions
		- Perform integration testing for your Streamlit app
		- Test your app on different browsers and devices
	`)
}
