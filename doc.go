// Package cogent parses the Cogent module language into model.Module values.
//
// A Cogent source file declares one or more modules. Each module states a
// goal and may declare typed inputs, context, an ordered process of steps
// (plain text, for and while loops, try/catch) and feedback, along with
// imports, type aliases, enums and annotations:
//
//	@owner("ops")
//	module Summarize {
//		import Text
//		enum Tone { Formal, Casual }
//		goal: "Summarize a document"
//		inputs: [doc: String, tone: Tone]
//		process: [
//			"Read the document",
//			for section in doc: ["Summarize the section"],
//			try ["Check facts"] catch err ["Flag the summary"]
//		]
//	}
//
// Parsing happens in two stages. The grammar engine turns text into a
// concrete syntax tree and reports problems as a *SyntaxError. The
// transformer then reduces the tree to modules; a tree it cannot assemble is
// reported as a *StructuralError. Both can be told apart with errors.Is
// against ErrSyntax and ErrStructural.
//
// Step text is never interpreted and declared types are not checked against
// their uses.
package cogent
