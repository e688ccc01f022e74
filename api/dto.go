package api

// CellDTO is one (row, col) coordinate in a JSON response.
type CellDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SolveResponse is the JSON body returned by the solve endpoint.
// Found is false when the goal is sealed off; that is a normal outcome
// and still answers with HTTP 200.
type SolveResponse struct {
	RequestID    string      `json:"requestId"`
	Rows         int         `json:"rows"`
	Cols         int         `json:"cols"`
	Connectivity int         `json:"connectivity"`
	Seed         int64       `json:"seed,omitempty"`
	Start        CellDTO     `json:"start"`
	Goal         CellDTO     `json:"goal"`
	Found        bool        `json:"found"`
	GoalDistance int         `json:"goalDistance"`
	Paths        [][]CellDTO `json:"paths"`
	GridText     string      `json:"gridText"`
	TimeTakenMs  float64     `json:"timeTakenMs"`
}
