package transform

import "github.com/specialistvlad/cogent/model"

// collectAnnotations consumes the leading run of annotation values in vals and
// folds it into a mapping. It returns the mapping and how many values it
// consumed; the first value that is not an annotation ends the run. A name
// written twice keeps the later annotation. The mapping is nil when the run is
// empty.
func collectAnnotations(vals []value) (model.Annotations, int) {
	var anns model.Annotations
	n := 0
	for _, v := range vals {
		av, ok := v.(annotationValue)
		if !ok {
			break
		}
		if anns == nil {
			anns = make(model.Annotations)
		}
		anns[av.ann.Name] = av.ann
		n++
	}
	return anns, n
}
