package ports

type PromptPort interface {
	Confirm(question string, fallback bool) bool
	Input(question string) string
}

type NotifierPort interface {
	Notice(msg string)
	Panel(title string, lines []string)
	Suggest(label string, command string)
}
