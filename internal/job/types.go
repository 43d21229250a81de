package job

// Task is one conversion: an existing absolute input file and the folder
// its output goes to.
type Task struct {
	SourcePath string
	OutputDir  string
}

type Result struct {
	Task  Task
	Error error
}
