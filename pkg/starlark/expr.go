package starlark

// Expr is a node in the expression model. The set of implementations is
// closed: Call, Str, List, BinOp, Assign, Var, and Load. New variants
// require a matching case in the renderer, which fails loudly on unknown
// types.
type Expr interface {
	isExpr()
}

// Str is a literal string. Value holds the raw, unescaped text; escaping
// happens exactly once, at render time.
type Str struct {
	Value string
}

// Var is a reference to a previously bound name.
type Var struct {
	Name string
}

// List is a bracketed list literal. An empty Items slice renders as [].
type List struct {
	Items []Expr
}

// BinOp is an infix operator expression, rendered as "left op right".
// bzlgen uses it for percent-style string formatting ("template" % value).
type BinOp struct {
	Op    string
	Left  Expr
	Right Expr
}

// Assign is a top-level variable binding ("name = value").
type Assign struct {
	Name  string
	Value Expr
}

// Arg is a single keyword argument of a Call.
type Arg struct {
	Key   string
	Value Expr
}

// Call is an invocation of a named rule or function with keyword
// arguments. Argument order is significant and preserved end-to-end:
// arguments render in exactly the order they appear in Args.
type Call struct {
	Name string
	Args []Arg
}

// Load is an import statement naming a module and the symbols pulled from
// it, rendered as "load(module, symbol, ...)".
type Load struct {
	Module  Expr
	Symbols []Expr
}

func (Str) isExpr()    {}
func (Var) isExpr()    {}
func (List) isExpr()   {}
func (BinOp) isExpr()  {}
func (Assign) isExpr() {}
func (Call) isExpr()   {}
func (Load) isExpr()   {}
