package cast

// ExprKind tags the variant of an Expr. Go has no sum types; each Expr
// carries exactly the payload fields its Kind defines, and callers switch
// on Kind instead of downcasting.
type ExprKind string

const (
	ExprLiteral  ExprKind = "literal"
	ExprVar      ExprKind = "var"
	ExprBuiltin  ExprKind = "builtin"
	ExprConstr   ExprKind = "constr"
	ExprLet      ExprKind = "let"
	ExprTFun     ExprKind = "tfun"
	ExprTApp     ExprKind = "tapp"
	ExprFun      ExprKind = "fun"
	ExprApp      ExprKind = "app"
	ExprMessage  ExprKind = "message"
	ExprMatch    ExprKind = "match"
	ExprFixpoint ExprKind = "fixpoint"
)

// Expr is one node of a type-annotated expression. Only the fields relevant
// to Kind are populated; see ExprKind's constants for which.
type Expr struct {
	Kind ExprKind `json:"kind"`

	// Literal
	Literal string `json:"literal,omitempty"`

	// Var: the identifier referenced, resolved by name in the analysis
	// environment.
	Name string `json:"name,omitempty"`

	// Builtin: the builtin's name.
	Builtin string `json:"builtin,omitempty"`

	// Constr: the constructor's name.
	Constructor string `json:"constructor,omitempty"`

	// Args is shared by Builtin, Constr, App (as the actual arguments).
	Args []Expr `json:"args,omitempty"`

	// Let, Fun: the bound/parameter name.
	Param string `json:"param,omitempty"`

	// Fun: the parameter's type, used to decide Val vs Fun parameter binding.
	ParamType *Type `json:"paramType,omitempty"`

	// Let: rhs; Fun/TFun: body; TApp/App: the applied function/type-function.
	Sub1 *Expr `json:"sub1,omitempty"`
	// Let: body.
	Sub2 *Expr `json:"sub2,omitempty"`

	// Message: the payload bindings (order preserved for determinism, not
	// semantically significant — Contributions union is order-independent).
	MessageFields []MessageField `json:"messageFields,omitempty"`

	// Match (expr form): scrutinee and clauses.
	Scrutinee *Expr       `json:"scrutinee,omitempty"`
	Clauses   []ExprClause `json:"clauses,omitempty"`
}

// MessageField is one `label: expr` entry of a Message literal. Label is
// compared case-sensitively against the two reserved payload labels,
// "_recipient" and "_amount".
type MessageField struct {
	Label string `json:"label"`
	Value Expr   `json:"value"`
}

// Pattern is a match clause's pattern: a constructor name and the ordered
// list of names it binds. "Some x" is Pattern{Constructor: "Some", Binders:
// []string{"x"}}; "None" is Pattern{Constructor: "None"}.
type Pattern struct {
	Constructor string   `json:"constructor"`
	Binders     []string `json:"binders,omitempty"`
}

// ExprClause is one `pattern => body` arm of a MatchExpr.
type ExprClause struct {
	Pattern Pattern `json:"pattern"`
	Body    Expr    `json:"body"`
}

// Reserved payload labels.
const (
	LabelRecipient = "_recipient"
	LabelAmount    = "_amount"
)

// Option-type constructor names, used by the PCM spurious-conditional
// idiom recognizer and by MatchStmt/MatchExpr binder binding.
const (
	CtorSome = "Some"
	CtorNone = "None"
)
