package cli

import "text/template"

var taskTemplate = template.Must(template.New("task").Funcs(template.FuncMap{
	"checkbox": checkbox,
}).Parse(`
=== Task Details ===

{{checkbox .Completed}} {{.Title}}
ID:      {{.ID}}
{{- if .Description }}

{{.Description}}
{{- end}}

Created: {{.CreatedAt.Local.Format "2006-01-02 15:04"}}
Updated: {{.UpdatedAt.Local.Format "2006-01-02 15:04"}}
`))

const usageText = `
Task Manager Client

Usage:
  taskmanager [OPTIONS] COMMAND [ARGS]

Options:
  --version                    Show version information
  --server URL                 Server URL (default: saved session server or http://localhost:8080)
  --db PATH                    Path to local session database (default: taskmanager-client.db)

Password Priority (highest to lowest):
  1. TASKMANAGER_PASSWORD environment variable
  2. --password-file (file path, register/login only)
  3. Interactive prompt (fallback)

Commands:
  register [--password-file PATH]        Register new user
  login [--password-file PATH]           Login to server
  logout                                 Logout and revoke the session token
  status                                 Show authentication status
  profile                                Show profile
  profile-update [-name NAME] [-password] Change name and/or password
  add [-d DESCRIPTION] TITLE...          Add new task
  list [-status all|done|pending]        List tasks, newest first
  get <id>                               Show task details
  done <id>                              Mark task as completed
  undone <id>                            Mark task as not completed
  edit [-title T] [-d DESCRIPTION] <id>  Change title and/or description
  delete [-y] <id>                       Delete task

Examples:
  taskmanager register
  taskmanager login
  taskmanager add -d "2 liters" Buy milk
  taskmanager list -status pending
  taskmanager done b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5
  taskmanager --server https://tasks.example.com login
`
