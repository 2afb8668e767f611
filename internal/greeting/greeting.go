// Package greeting provides the two greeter components the executable
// links in different ways: StaticGreeter is compiled directly into the
// binary, while SharedGreeter is delivered in a separately built
// artifact (see cmd/greetshared) and resolved at run time.
package greeting

// Greeter is the single-operation contract both components satisfy.
type Greeter interface {
	// Greet writes one fixed greeting line to the component's output.
	Greet()
}

// Fixed greeting lines. The executable's stdout contract is exactly
// these three lines, in order: shared, static, then ExecutableMessage.
const (
	SharedMessage     = "Hello, World from shared library!"
	StaticMessage     = "Hello, World from static library!"
	ExecutableMessage = "Hello, World from executable!"
)
