package cast

// StmtKind tags the variant of a Stmt.
type StmtKind string

const (
	StmtLoad          StmtKind = "load"
	StmtStore         StmtKind = "store"
	StmtMapGet        StmtKind = "mapget"
	StmtMapUpdate     StmtKind = "mapupdate"
	StmtAcceptPayment StmtKind = "accept"
	StmtSendMsgs      StmtKind = "send"
	StmtCreateEvnt    StmtKind = "event"
	StmtReadFromBC    StmtKind = "readbc"
	StmtBind          StmtKind = "bind"
	StmtMatch         StmtKind = "match"
	StmtCallProc      StmtKind = "call"
	StmtIterate       StmtKind = "iterate"
	StmtThrow         StmtKind = "throw"
)

// Stmt is one statement of a component body.
type Stmt struct {
	Kind StmtKind `json:"kind"`

	// Binder is the name bound by Load, MapGet, ReadFromBC, Bind.
	Binder string `json:"binder,omitempty"`

	// Field is the pseudofield name touched by Load, Store, MapGet, MapUpdate.
	Field string `json:"field,omitempty"`

	// Keys are the key-identifier names for MapGet/MapUpdate, naming the
	// variables whose values index the map (not literal key values — the
	// summarisability check in internal/summary resolves each name against
	// the analysis environment).
	Keys []string `json:"keys,omitempty"`

	// Value is the stored/sent/emitted/bound expression: Store's RHS,
	// MapUpdate's optional RHS (nil means delete), SendMsgs/CreateEvnt's
	// payload, Bind's RHS.
	Value *Expr `json:"value,omitempty"`

	// Scrutinee is MatchStmt's discriminee.
	Scrutinee *Expr `json:"scrutinee,omitempty"`

	// Clauses are MatchStmt's arms.
	Clauses []StmtClause `json:"clauses,omitempty"`

	// Proc, Args: CallProc's callee name and actual arguments.
	Proc string `json:"proc,omitempty"`
	Args []Expr `json:"args,omitempty"`
}

// StmtClause is one `pattern => body` arm of a MatchStmt.
type StmtClause struct {
	Pattern Pattern `json:"pattern"`
	Body    []Stmt  `json:"body"`
}
