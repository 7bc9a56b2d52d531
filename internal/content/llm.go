package content

import "github.com/jask/devsheet/internal/page"

func advancedAnthropicAPI(out page.Surface) {
	out.Header("Advanced Anthropic API Usage")

	out.Subheader("Latest Anthropic Models (cost in USD)")
	out.Markdown(`
		- **Claude 3.5 Sonnet**:
		    - API Model Name: claude-3-5-sonnet-20240620
		    - Max Tokens: 200,000
		    - Cost: 3.00 / 15.00 per 1M tokens (input/output)
		- **Claude 3 Opus**:
		    - API Model Name: claude-3-opus-20240229
		    - Max Tokens: 200,000
		    - Cost: 15.00 / 75.00 per 1M tokens (input/output)
		- **Claude 3 Sonnet**:
		    - API Model Name: claude-3-sonnet-20240229
		    - Max Tokens: 200,000
		    - Cost: 3.00 / 15.00 per 1M tokens (input/output)
		- **Claude 3 Haiku**:
		    - API Model Name: claude-3-haiku-20240307
		    - Max Tokens: 200,000
		    - Cost: 0.25 / 1.25 per 1M tokens (input/output)
	`)

	out.Subheader("Basic API Call")
	out.Code("python", `
		import anthropic

		client = anthropic.Anthropic()

		response = client.messages.create(
		    model="claude-3-5-sonnet-20240620",
		    max_tokens=1000,
		    system="You are a world-class poet. Respond only with short poems.",
		    messages=[
		        {
		            "role": "user",
		            "content": "Why is the ocean salty?"
		        }
		    ]
		)
		print(response.content)
	`)

	out.Subheader("Structured Outputs")
	out.Markdown("Claude can generate structured outputs adhering to a specified JSON Schema.")
	out.Code("python", `
		from pydantic import BaseModel

		class CalendarEvent(BaseModel):
		    name: str
		    date: str
		    participants: list[str]

		completion = client.messages.create(
		    model="claude-3-5-sonnet-20240620",
		    max_tokens=1000,
		    system="Extract the event information.",
		    messages=[
		        {
		            "role": "user",
		            "content": "Alice and Bob are attending a meeting on September 15th."
		        }
		    ],
		    response_format=CalendarEvent.schema_json()
		)

		event = CalendarEvent.parse_raw(completion.content[0].text)
		print(event)
	`)

	out.Subheader("Tool Use")
	out.Markdown("Claude can be equipped with custom tools to handle specific queries.")
	out.Code("python", `
		weather_tool = {
		    "name": "get_weather",
		    "description": "Get the current weather in a given location",
		    "parameters": {
		        "type": "object",
		        "properties": {
		            "location": {"type": "string", "description": "City and state"},
		            "unit": {"type": "string", "enum": ["celsius", "fahrenheit"]}
		        },
		        "required": ["location"]
		    }
		}

		response = client.messages.create(
		    model="claude-3-5-sonnet-20240620",
		    max_tokens=1000,
		    system="You are a helpful assistant.",
		    messages=[
		        {
		            "role": "user",
		            "content": "What's the weather like in San Francisco?"
		        }
		    ],
		    tools=[weather_tool]
		)
	`)

	out.Subheader("Prompt Caching (Beta)")
	out.Markdown("Prompt Caching optimizes API usage by storing and reusing sections of your prompt.")
	out.Code("python", `
		response = client.messages.create(
		    model="claude-3-5-sonnet-20240620",
		    max_tokens=1000,
		    system=[
		        {
		            "type": "text",
		            "text": "You are an AI assistant tasked with analyzing literary works."
		        },
		        {
		            "type": "text",
		            "text": "<the entire contents of Pride and Prejudice>",
		            "cache_control": {"type": "ephemeral"}
		        }
		    ],
		    messages=[
		        {
		            "role": "user",
		            "content": "Analyze the major themes in Pride and Prejudice."
		        }
		    ]
		)
	`)

	out.Subheader("Best Practices")
	out.Markdown(`
		1. Use structured outputs for consistent data formats.
		2. Leverage tool use for complex, multi-step tasks.
		3. Implement prompt caching for improved performance with large contexts.
		4. Always handle API errors gracefully.
		5. Monitor token usage to control costs.
	`)
}

func advancedOpenAIAPI(out page.Surface) {
	out.Header("Advanced OpenAI API Usage")

	out.Subheader("Latest OpenAI Models (cost in USD)")
	out.Markdown(`
		- **GPT-4o (2024-08-06)**:
		    - API Model Name: gpt-4o-2024-08-06
		    - Max Tokens: 128,000
		    - Max Output Tokens: 16,384
		    - Cost: 2.50 per 1K input tokens, 7.50 per 1K output tokens
		- **GPT-4o (2024-05-13)**:
		    - API Model Name: gpt-4o-2024-05-13
		    - Max Tokens: 128,000
		    - Max Output Tokens: 4,096
		    - Cost: 5.00 per 1K input tokens, 15.00 per 1K output tokens
		- **GPT-4o-mini (2024-07-18)**:
		    - API Model Name: gpt-4o-mini-2024-07-18
		    - Max Tokens: 128,000
		    - Cost: 0.15 per 1M input tokens, 0.60 per 1M output tokens
	`)

	out.Subheader("Basic API Call")
	out.Code("python", `
		from openai import OpenAI

		client = OpenAI()

		response = client.chat.completions.create(
		    model="gpt-4o-2024-08-06",
		    messages=[
		        {"role": "system", "content": "You are a helpful assistant."},
		        {"role": "user", "content": "Who won the World Series in 2020?"}
		    ],
		    temperature=0.7,
		    max_tokens=150
		)

		print(response.choices[0].message.content)
	`)

	out.Subheader("Streaming Responses")
	out.Code("python", `
		response = client.chat.completions.create(
		    model="gpt-4o-2024-08-06",
		    messages=[...],
		    stream=True
		)

		for chunk in response:
		    print(chunk.choices[0].delta.content, end='')
	`)

	out.Subheader("Function Calling")
	out.Code("python", `
		functions = [
		    {
		        "name": "get_weather",
		        "description": "Get the current weather in a location",
		        "parameters": {
		            "type": "object",
		            "properties": {
		                "location": {
		                    "type": "string",
		                    "description": "The city and state, e.g. San Francisco, CA"
		                },
		                "unit": {
		                    "type": "string",
		                    "enum": ["celsius", "fahrenheit"]
		                }
		            },
		            "required": ["location"]
		        }
		    }
		]

		response = client.chat.completions.create(
		    model="gpt-4o-2024-08-06",
		    messages=[
		        {"role": "user", "content": "What's the weather like in Boston?"}
		    ],
		    functions=functions,
		    function_call="auto"
		)
	`)

	out.Subheader("Vision Capabilities")
	out.Code("python", `
		response = client.chat.completions.create(
		    model="gpt-4o-2024-08-06",
		    messages=[
		        {
		            "role": "user",
		            "content": [
		                {"type": "text", "text": "What's in this image?"},
		                {
		                    "type": "image",
		                    "image_url": {"url": "https://example.com/image.jpg"}
		                }
		            ]
		        }
		    ]
		)
	`)

	out.Subheader("Reproducible Outputs (Beta)")
	out.Code("python", `
		response = client.chat.completions.create(
		    model="gpt-4o-2024-08-06",
		    messages=[...],
		    seed=42
		)
	`)

	out.Subheader("Best Practices")
	out.Markdown(`
		1. Use the latest models for improved performance and capabilities.
		2. Implement streaming for better user experience with long responses.
		3. Leverage function calling for structured interactions.
		4. Utilize vision capabilities for image-related tasks.
		5. Set a seed for reproducible outputs when needed.
		6. Always handle API errors and implement proper error handling.
		7. Monitor and optimize token usage to control costs.
	`)
}
