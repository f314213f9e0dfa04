package livecharts

// Command is a bindable action paired with an executability predicate.
// Command slots on ChartView are optional; a nil slot is simply skipped.
// When the predicate reports false the command is silently skipped while the
// matching event channel still fires.
type Command interface {
	CanExecute(arg any) bool
	Execute(arg any)
}

// CommandFunc adapts plain functions to the Command interface. A nil CanRun
// means always executable.
type CommandFunc struct {
	CanRun func(arg any) bool
	Run    func(arg any)
}

// CanExecute reports whether the command may run with arg.
func (c CommandFunc) CanExecute(arg any) bool {
	if c.CanRun == nil {
		return true
	}
	return c.CanRun(arg)
}

// Execute runs the command with arg. A nil Run is a no-op.
func (c CommandFunc) Execute(arg any) {
	if c.Run != nil {
		c.Run(arg)
	}
}

// executeCommand fires cmd with arg if it is bound and executable.
func executeCommand(cmd Command, arg any) {
	if cmd != nil && cmd.CanExecute(arg) {
		cmd.Execute(arg)
	}
}
