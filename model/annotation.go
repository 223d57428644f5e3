package model

// Annotation is a name plus its ordered string arguments. An annotation
// written without arguments is a presence flag.
type Annotation struct {
	Name string
	Args []string
}

// IsFlag reports whether the annotation carries no arguments.
func (a Annotation) IsFlag() bool {
	return len(a.Args) == 0
}

// Annotations maps annotation names to the annotation attached under that
// name. When the same name is written twice the later one wins.
type Annotations map[string]Annotation

// Has reports whether an annotation with the given name is present.
func (a Annotations) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Args returns the arguments of the named annotation.
func (a Annotations) Args(name string) ([]string, bool) {
	ann, ok := a[name]
	if !ok {
		return nil, false
	}
	return ann.Args, true
}
