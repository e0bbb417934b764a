package main

import "github.com/goliatone/go-confgen/pkg/orchestrator"

// deploymentQuestions is the fixed script of values the bundled templates
// consume: application settings, database credentials, and the web-server
// front end. Answers persist to the state file, so a re-run proposes the
// previous answers as defaults.
func deploymentQuestions() []orchestrator.Question {
	return []orchestrator.Question{
		orchestrator.Text("PROJECT_NAME", "Project name", "myproject"),
		orchestrator.Text("DOMAIN", "Public domain name", "example.com"),
		orchestrator.Text("DB_HOST", "Database host", "localhost"),
		orchestrator.Text("DB_NAME", "Database name", "myproject"),
		orchestrator.Text("DB_USER", "Database user", "myproject"),
		orchestrator.Secret("DB_PASSWORD", "Database password"),
		orchestrator.Secret("SECRET_KEY", "Application secret key"),
		orchestrator.Boolean("USE_HTTPS", "Serve over HTTPS?", true),
		orchestrator.Boolean("DEBUG", "Enable debug mode?", false),
	}
}
