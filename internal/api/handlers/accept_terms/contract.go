package accept_terms

type SessionStore interface {
	SetTermsAccepted(sessionID string, accepted bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
