package nodetree

// StatusMsg carries transient feedback for the host's status bar.
type StatusMsg struct {
	Text string
}
