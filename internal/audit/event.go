package audit

// Ações registradas no log do sistema.
const (
	ActionLogin    = "login"
	ActionLogout   = "logout"
	ActionRegister = "register"

	ActionCreateVisitor   = "create_visitor"
	ActionCheckInVisitor  = "checkin_visitor"
	ActionCheckOutVisitor = "checkout_visitor"
	ActionDeleteVisitor   = "delete_visitor"
	ActionSearchVisitors  = "search_visitors"
	ActionViewHistory     = "view_history"

	ActionAccessControle = "access_controle"
	ActionViewSystemLogs = "view_system_logs"
	ActionUploadPhoto    = "upload_photo"
)

// Actor é quem executou a ação (sempre um usuário autenticado).
type Actor struct {
	ID   string
	Name string
	CPF  string
}

// Origin carrega metadados best-effort da requisição; nunca são
// tratados como autoritativos.
type Origin struct {
	IP        string
	UserAgent string
}

type Event struct {
	Actor  Actor
	Origin Origin

	Action  string
	Details string

	TargetID   *string
	TargetName string
}
