// Package flows defines the flow markers and the generic envelope that
// carries a single connector operation from request build through
// response parse.
package flows

// Flow is a compile-time marker for a connector operation type.
// The marker types carry no data; they select which request and
// response payloads an envelope holds.
type Flow interface {
	isFlow()
	String() string
}

type Authorize struct{}
type Capture struct{}
type Void struct{}
type Refund struct{}
type PSync struct{}
type RSync struct{}
type Tokenize struct{}

func (Authorize) isFlow() {}
func (Capture) isFlow()   {}
func (Void) isFlow()      {}
func (Refund) isFlow()    {}
func (PSync) isFlow()     {}
func (RSync) isFlow()     {}
func (Tokenize) isFlow()  {}

func (Authorize) String() string { return "authorize" }
func (Capture) String() string   { return "capture" }
func (Void) String() string      { return "void" }
func (Refund) String() string    { return "refund" }
func (PSync) String() string     { return "psync" }
func (RSync) String() string     { return "rsync" }
func (Tokenize) String() string  { return "tokenize" }
