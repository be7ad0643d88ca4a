package rest

const (
	ActionMakeMove  = "makeMove"
	ActionGetWinner = "getWinner"
)

// Request - body of POST /tictactoe.
type Request struct {
	Action     string     `json:"action"`
	Opponent   string     `json:"opponent"`
	BoardState [][]string `json:"boardState"`
	PlayerUnit *string    `json:"playerUnit"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
