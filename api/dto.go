package api

// SolveRequest is the body of POST /v1/solve.
type SolveRequest struct {
	Maze     string `json:"maze" binding:"required"`
	Strategy string `json:"strategy"` // "dfs" or "bfs"; empty uses the server default
	Render   bool   `json:"render"`
}

// CellDTO is a grid position on the wire.
type CellDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SolveResponse reports one search.
type SolveResponse struct {
	RequestID     string    `json:"requestId"`
	Strategy      string    `json:"strategy"`
	Solved        bool      `json:"solved"`
	Steps         int       `json:"steps"`
	Moves         []string  `json:"moves"`
	Cells         []CellDTO `json:"cells"`
	NodesExplored int       `json:"nodesExplored"`
	Summary       string    `json:"summary"`
	Rendered      string    `json:"rendered,omitempty"`
}
