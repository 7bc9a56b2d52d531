package content

import (
	"strings"

	"github.com/jask/devsheet/internal/page"
)

func pythonTips(out page.Surface) {
	out.Header("Python Tips")

	out.Subheader("Virtual Environments")
	out.Code("bash", `
		# Create a virtual environment
		python -m venv myenv

		# Activate the environment
		# On Windows:
		myenv\Scripts\activate
		# On macOS and Linux:
		source myenv/bin/activate

		# Install packages
		pip install package_name

		# Generate requirements.txt
		pip freeze > requirements.txt
	`)

	out.Subheader("Error Handling")
	out.Code("python", `
		try:
		    # Code that might raise an exception
		    result = risky_function()
		except SomeSpecificError as e:
		    # Handle specific error
		    st.error(f"An error occurred: {e}")
		except Exception as e:
		    # Handle any other exception
		    st.error(f"An unexpected error occurred: {e}")
		else:
		    # Code to run if no exception occurs
		    st.success("Operation completed successfully!")
		finally:
		    # Code that will always run
		    cleanup_function()
	`)

	out.Subheader("List Comprehensions")
	out.Code("python", `
		# Create a list of squares
		squares = [x**2 for x in range(10)]

		# Filter a list
		even_numbers = [x for x in range(20) if x % 2 == 0]

		# Nested list comprehension
		matrix = [[i*j for j in range(5)] for i in range(5)]
	`)
}

var vscodeShortcutList = [][2]string{
	{"Ctrl+Shift+P", "Open Command Palette"},
	{"Ctrl+P", "Quick Open, Go to File"},
	{"Ctrl+Shift+N", "New Window/Instance"},
	{"Ctrl+Shift+W", "Close Window/Instance"},
	{"Ctrl+,", "User Settings"},
	{"Ctrl+K Ctrl+S", "Keyboard Shortcuts"},
	{"Ctrl+X", "Cut line"},
	{"Ctrl+C", "Copy line"},
	{"Alt+ ↑ / ↓", "Move line up/down"},
	{"Shift+Alt + ↓ / ↑", "Copy line up/down"},
	{"Ctrl+Shift+K", "Delete line"},
	{"Ctrl+Enter", "Insert line below"},
	{"Ctrl+Shift+Enter", "Insert line above"},
	{`Ctrl+Shift+\`, "Jump to matching bracket"},
	{"Ctrl+] / [", "Indent/outdent line"},
	{"Home / End", "Go to beginning/end of line"},
	{"Ctrl+Home", "Go to beginning of file"},
	{"Ctrl+End", "Go to end of file"},
	{"Ctrl+↑ / ↓", "Scroll line up/down"},
	{"Alt+PgUp / PgDn", "Scroll page up/down"},
	{"Ctrl+Shift+[", "Fold (collapse) region"},
	{"Ctrl+Shift+]", "Unfold (uncollapse) region"},
	{"Ctrl+K Ctrl+[", "Fold (collapse) all subregions"},
	{"Ctrl+K Ctrl+]", "Unfold (uncollapse) all subregions"},
	{"Ctrl+K Ctrl+0", "Fold (collapse) all regions"},
	{"Ctrl+K Ctrl+J", "Unfold (uncollapse) all regions"},
}

func vscodeShortcuts(out page.Surface) {
	out.Header("VS Code Shortcuts")

	var sb strings.Builder
	sb.WriteString("| Shortcut | Action |\n| --- | --- |\n")
	for _, s := range vscodeShortcutList {
		sb.WriteString("| `" + s[0] + "` | " + s[1] + " |\n")
	}
	out.Markdown(sb.String())
}

func replitTips(out page.Surface) {
	out.Header("Replit Tips")

	out.Subheader("Getting Started")
	out.Markdown(`
		1. Create an account on [Replit](https://replit.com)
		2. Click on "+ New repl" to start a new project
		3. Choose your programming language or start from a template
	`)

	out.Subheader("Key Features")
	out.Markdown(`
		- **Multiplayer Coding**: Collaborate in real-time with other developers
		- **Hosting**: Deploy web apps directly from Replit
		- **Database**: Use Replit's built-in key-value store database
		- **Version Control**: Integrated Git support
		- **Package Management**: Install packages directly from the shell
	`)

	out.Subheader("Useful Shortcuts")
	out.Code("text", `
		Ctrl + Enter: Run code
		Ctrl + S: Save changes
		Ctrl + /: Toggle comment
		Ctrl + F: Find in file
		Ctrl + Shift + F: Find in all files
	`)

	out.Subheader("Using Replit for Streamlit")
	out.Code("python", `
		# In the Shell:
		pip install streamlit

		# In your main.py:
		import streamlit as st

		st.write("Hello, Streamlit on Replit!")

		# To run:
		streamlit run main.py
	`)

	out.Markdown("Remember to set the run command to `streamlit run main.py` in the `.replit` file.")
}

func githubCommands(out page.Surface) {
	out.Header("GitHub Commands")

	out.Subheader("Basic Git Commands")
	out.Code("bash", `
		# Initialize a new Git repository
		git init

		# Clone a repository
		git clone <repository-url>

		# Check status of your repository
		git status

		# Add files to staging area
		git add <file-name>
		git add .  # Add all files

		# Commit changes
		git commit -m "Commit message"

		# Push changes to remote repository
		git push origin <branch-name>

		# Pull changes from remote repository
		git pull origin <branch-name>

		# Create and switch to a new branch
		git checkout -b <new-branch-name>

		# Switch to an existing branch
		git checkout <branch-name>

		# Merge branches
		git merge <branch-name>

		# View commit history
		git log
	`)

	out.Subheader("Advanced Git Commands")
	out.Code("bash", `
		# Stash changes
		git stash
		git stash pop

		# Rebase branches
		git rebase <base-branch>

		# Cherry-pick commits
		git cherry-pick <commit-hash>

		# Reset to a specific commit
		git reset --hard <commit-hash>

		# Undo last commit (keeping changes)
		git reset --soft HEAD~1

		# Amend last commit
		git commit --amend
	`)
}

func githubIntegrationGuide(out page.Surface) {
	out.Header("Get It All Into GitHub: A Comprehensive Guide")

	out.Markdown(`
		This guide will walk you through the process of getting your Streamlit app and all related files into GitHub, from initial setup to ongoing maintenance.
	`)

	out.Subheader("1. Prerequisites")
	out.Markdown(`
		- Install Git on your local machine
		- Create a GitHub account
		- Set up SSH key for GitHub (optional but recommended)
	`)

	out.Subheader("2. Initialize Local Git Repository")
	out.Code("bash", `
		# Navigate to your project directory
		cd path/to/your/streamlit/project

		# Initialize a new Git repository
		git init
	`)

	out.Subheader("3. Create .gitignore File")
	out.Markdown("Create a `.gitignore` file to exclude unnecessary files from version control.")
	out.Code("text", `
		# .gitignore file content
		*.pyc
		__pycache__
		.env
		venv/
		.streamlit/secrets.toml
	`)

	out.Subheader("4. Stage and Commit Files")
	out.Code("bash", `
		# Add all files to staging area
		git add .

		# Commit changes
		git commit -m "Initial commit"
	`)

	out.Subheader("5. Create GitHub Repository")
	out.Markdown(`
		1. Go to GitHub and log in
		2. Click the '+' icon and select 'New repository'
		3. Name your repository and add a description
		4. Choose public or private
		5. Do not initialize with README, .gitignore, or license
		6. Click 'Create repository'
	`)

	out.Subheader("6. Link Local Repository to GitHub")
	out.Code("bash", `
		# Add the remote repository
		git remote add origin https://github.com/yourusername/your-repo-name.git

		# Push your code to GitHub
		git push -u origin main
	`)

	out.Subheader("7. Verify Files on GitHub")
	out.Markdown("Check your GitHub repository to ensure all files have been pushed correctly.")

	out.Subheader("8. Ongoing Maintenance")
	out.Markdown(`
		- Regular commits: Make small, frequent commits with clear messages
		- Push changes: Regularly push your changes to GitHub
		- Pull before working: Always pull the latest changes before starting work
		- Use branches: Create feature branches for new developments
	`)

	out.Subheader("9. Collaborating with Others")
	out.Markdown(`
		- Invite collaborators in GitHub repository settings
		- Use Pull Requests for code reviews
		- Resolve merge conflicts when they arise
	`)

	out.Subheader("10. GitHub Actions for Streamlit")
	out.Markdown(`
		Consider setting up GitHub Actions for continuous integration and deployment of your Streamlit app.
	`)
	out.Code("yaml", `
		# Example .github/workflows/streamlit_app.yml
		name: Streamlit App CI/CD

		on:
		  push:
		    branches: [ main ]
		  pull_request:
		    branches: [ main ]

		jobs:
		  build:
		    runs-on: ubuntu-latest
		    steps:
		    - uses: actions/checkout@v2
		    - name: Set up Python
		      uses: actions/setup-python@v2
		      with:
		        python-version: 3.8
		    - name: Install dependencies
		      run: |
		        python -m pip install --upgrade pip
		        pip install -r requirements.txt
		    - name: Run tests
		      run: python -m unittest discover tests
	`)

	out.Subheader("11. Managing Secrets")
	out.Markdown(`
		- Never commit sensitive information (API keys, passwords) to GitHub
		- Use environment variables or Streamlit's secrets management for local development
		- For deployment, use the platform's secret management system (e.g., GitHub Secrets for GitHub Actions)
	`)

	out.Subheader("12. Documentation")
	out.Markdown(`
		- Create a README.md file with:
		  - Project description
		  - Installation instructions
		  - Usage guide
		  - Contribution guidelines
		- Keep documentation up-to-date as your project evolves
	`)

	out.Subheader("13. Versioning")
	out.Markdown(`
		- Use semantic versioning for releases (MAJOR.MINOR.PATCH)
		- Create Git tags for important releases
		- Maintain a CHANGELOG.md to track changes
	`)

	out.Markdown(`
		By following this guide, you'll have a robust GitHub workflow for your Streamlit project,
		enabling effective version control, collaboration, and potentially automated deployment.
	`)
}
