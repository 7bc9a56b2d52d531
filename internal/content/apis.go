package content

import "github.com/jask/devsheet/internal/page"

func apiIntegration(out page.Surface) {
	out.Header("API Integration")

	out.Subheader("OpenAI API")
	out.Code("python", `
		import os
		from openai import OpenAI
		from dotenv import load_dotenv

		# Load environment variables
		load_dotenv()

		# Set up the OpenAI client
		client = OpenAI(api_key=os.getenv("OPENAI_API_KEY"))

		# Make an API call
		response = client.chat.completions.create(
		    model="gpt-4o-2024-08-06",  # Latest GPT-4o model as of knowledge cutoff
		    messages=[
		        {"role": "system", "content": "You are a helpful assistant."},
		        {"role": "user", "content": "What is the capital of France?"}
		    ],
		    max_tokens=150,
		    temperature=0.7
		)

		print(response.choices[0].message.content)
	`)

	out.Subheader("Anthropic API")
	out.Code("python", `
		import os
		from anthropic import Anthropic
		from dotenv import load_dotenv

		# Load environment variables
		load_dotenv()

		# Set up the Anthropic client
		client = Anthropic(api_key=os.getenv("ANTHROPIC_API_KEY"))

		# Make an API call
		response = client.messages.create(
		    model="claude-3.5-sonnet-20240620",  # Latest Claude model as of knowledge cutoff
		    max_tokens=1000,
		    messages=[
		        {"role": "system", "content": "You are a helpful assistant."},
		        {"role": "user", "content": "What is the capital of France?"}
		    ]
		)

		print(response.content[0].text)
	`)

	out.Subheader("Handling API Keys Securely")
	out.Markdown("1. Create a `.env` file in your project root\n" +
		"2. Add your API keys to the `.env` file:")
	out.Code("bash", `
		OPENAI_API_KEY=your_openai_api_key_here
		ANTHROPIC_API_KEY=your_anthropic_api_key_here
	`)
	out.Markdown("3. Use `python-dotenv` to load environment variables\n" +
		"4. Add `.env` to your `.gitignore` file to prevent committing sensitive information")

	out.Subheader("Error Handling for API Calls")
	out.Code("python", `
		import os
		from openai import OpenAI
		from anthropic import Anthropic
		from dotenv import load_dotenv

		load_dotenv()

		def make_openai_call():
		    client = OpenAI(api_key=os.getenv("OPENAI_API_KEY"))
		    try:
		        response = client.chat.completions.create(
		            model="gpt-4o-2024-08-06",
		            messages=[{"role": "user", "content": "Hello, world!"}],
		            max_tokens=150
		        )
		        return response.choices[0].message.content
		    except Exception as e:
		        return f"OpenAI API error: {str(e)}"

		def make_anthropic_call():
		    client = Anthropic(api_key=os.getenv("ANTHROPIC_API_KEY"))
		    try:
		        response = client.messages.create(
		            model="claude-3.5-sonnet-20240620",
		            max_tokens=1000,
		            messages=[{"role": "user", "content": "Hello, world!"}]
		        )
		        return response.content[0].text
		    except Exception as e:
		        return f"Anthropic API error: {str(e)}"
	`)
}

func githubModels(out page.Surface) {
	out.Header("GitHub Models Implementation")

	out.Subheader("Setting Up")
	out.Code("python", `
		import os
		from openai import OpenAI
		from azure.ai.inference import ChatCompletionsClient
		from azure.ai.inference.models import SystemMessage, UserMessage
		from azure.core.credentials import AzureKeyCredential
		from mistralai import Mistral, UserMessage, SystemMessage

		# Set up environment variables
		os.environ["GITHUB_TOKEN"] = "your-github-token-here"
		ENDPOINT = "https://models.inference.ai.azure.com"
	`)

	out.Subheader("Using GPT-4 Models")
	out.Code("python", `
		def use_gpt4_model():
		    client = OpenAI(
		        base_url=ENDPOINT,
		        api_key=os.environ["GITHUB_TOKEN"],
		    )

		    response = client.chat.completions.create(
		        model="gpt-4o-2024-08-06",
		        messages=[
		            {"role": "system", "content": "You are a helpful assistant."},
		            {"role": "user", "content": "What is the capital of France?"}
		        ],
		        temperature=1.0,
		        max_tokens=1000,
		        top_p=1.0
		    )

		    return response.choices[0].message.content
	`)

	out.Subheader("Using Meta LLaMA Models")
	out.Code("python", `
		def use_llama_model():
		    client = ChatCompletionsClient(
		        endpoint=ENDPOINT,
		        credential=AzureKeyCredential(os.environ["GITHUB_TOKEN"]),
		    )

		    response = client.complete(
		        messages=[
		            SystemMessage(content="You are a helpful assistant."),
		            UserMessage(content="What is the capital of France?"),
		        ],
		        model="meta-llama-3.1-70b-instruct",
		        temperature=1.0,
		        max_tokens=1000,
		        top_p=1.0
		    )

		    return response.choices[0].message.content
	`)

	out.Subheader("Using Mistral Models")
	out.Code("python", `
		def use_mistral_model():
		    client = Mistral(api_key=os.environ["GITHUB_TOKEN"], server_url=ENDPOINT)

		    response = client.chat.complete(
		        model="Mistral-large-2407",
		        messages=[
		            SystemMessage(content="You are a helpful assistant."),
		            UserMessage(content="What is the capital of France?"),
		        ],
		        temperature=1.0,
		        max_tokens=1000,
		        top_p=1.0
		    )

		    return response.choices[0].message.content
	`)

	out.Subheader("Handling Multiple Tools")
	out.Markdown(`
		When working with GitHub models, you can provide multiple tools in one request. The model will choose which tool to use based on the user's query. This allows for more flexible and context-aware responses.
	`)

	out.Subheader("Error Handling and Best Practices")
	out.Code("python", `
		def safe_model_call(model_func):
		    try:
		        return model_func()
		    except Exception as e:
		        return f"An error occurred: {str(e)}"

		# Usage
		result = safe_model_call(use_gpt4_model)
	`)
}

func perplexityAPI(out page.Surface) {
	out.Header("Using Perplexity API")

	out.Markdown(`
		The Perplexity API provides access to advanced language models for chat completions.
		Here's how to use it in your Python applications.
	`)

	out.Subheader("Authentication")
	out.Code("python", `
		import requests

		API_KEY = "your-api-key-here"
		headers = {
		    "Authorization": f"Bearer {API_KEY}",
		    "Content-Type": "application/json"
		}
	`)

	out.Subheader("Making a Basic API Call")
	out.Code("python", `
		import requests
		import json

		url = "https://api.perplexity.ai/chat/completions"

		payload = {
		    "model": "llama-3.1-sonar-small-128k-online",
		    "messages": [
		        {
		            "role": "system",
		            "content": "Be precise and concise."
		        },
		        {
		            "role": "user",
		            "content": "What is the capital of France?"
		        }
		    ],
		    "temperature": 0.2,
		    "top_p": 0.9,
		    "return_citations": True
		}

		response = requests.post(url, json=payload, headers=headers)
		print(json.dumps(response.json(), indent=2))
	`)

	out.Subheader("Handling Rate Limits")
	out.Markdown("Perplexity API has rate limits based on the model used. For example:\n" +
		"- `llama-3.1-sonar-small-128k-online`: 20 requests/min\n" +
		"- `llama-3.1-8b-instruct`: 100 requests/min\n\n" +
		"Implement appropriate error handling and retry mechanisms to manage these limits.")

	out.Subheader("Streaming Responses")
	out.Code("python", `
		import requests
		import sseclient

		url = "https://api.perplexity.ai/chat/completions"
		payload["stream"] = True

		response = requests.post(url, json=payload, headers=headers, stream=True)
		client = sseclient.SSEClient(response)

		for event in client.events():
		    if event.data != "[DONE]":
		        print(json.loads(event.data)['choices'][0]['delta'].get('content', ''), end='')
	`)

	out.Subheader("Best Practices")
	out.Markdown(`
		1. Always handle API errors gracefully.
		2. Use environment variables to store your API key.
		3. Implement retry logic for rate limit errors.
		4. Consider using async methods for improved performance in high-volume applications.
		5. Keep your model and API version up-to-date.
	`)
}
