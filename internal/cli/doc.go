// Package cli provides the interactive prompting boundary for afscreen.
//
// Commands ask questions through the [Prompter] interface and own their retry
// policy (for example "at least one screening chain"). Two implementations
// exist:
//   - [TeaPrompter]: a [Bubbletea] text input, used when stdin is a terminal
//   - [LinePrompter]: plain line reads, used for pipes and tests
//
// Both return [ErrAborted] when the user cancels (ctrl+c, esc) or the input
// stream ends.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
package cli
