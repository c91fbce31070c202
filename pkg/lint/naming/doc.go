// Package naming resolves which naming convention applies to a symbol.
//
// A config contributes an ordered list of Selectors. Each Selector targets one
// symbol Kind and requires a set of Modifiers. For a symbol of kind K with
// modifiers M, the candidates are the selectors for K whose modifiers are a
// subset of M. The candidate with the most modifiers wins; ties go to the
// selector declared last. No candidate means no constraint.
//
//	sels := []naming.Selector{
//		{Kind: naming.KindClassProperty, Modifiers: naming.NewModifiers(naming.ModPublic), Format: []naming.Format{naming.FormatPascalCase}},
//		{Kind: naming.KindClassProperty, Modifiers: naming.NewModifiers(naming.ModPublic, naming.ModReadonly), Format: []naming.Format{naming.FormatUpperCase}},
//	}
//	c, ok := naming.Resolve(sels, naming.KindClassProperty, naming.NewModifiers(naming.ModPublic, naming.ModReadonly))
//	// ok == true, c.Format == [UPPER_CASE]
//	violations := c.Check("MAX_SIZE")
package naming
