package ir

// Children returns the ordered list of an IR node's direct children.
func Children(node Node) []Node {
	var children []Node

	add := func(n Node) {
		children = append(children, n)
	}

	switch v := node.(type) {
	case *ModuleFragment:
		for _, file := range v.Files {
			add(file)
		}
		for _, decl := range v.External {
			add(decl)
		}
	case *File:
		for _, decl := range v.Decls {
			add(decl)
		}
	case *Class:
		for _, sup := range v.Supertypes {
			add(sup)
		}
		for _, member := range v.Members {
			add(member)
		}
		for _, annot := range v.Annotations {
			add(annot)
		}
	case *Func:
		for _, param := range v.Params {
			add(param)
		}
		if v.Return != nil {
			add(v.Return)
		}
		if v.Body != nil {
			add(v.Body)
		}
		for _, annot := range v.Annotations {
			add(annot)
		}
	case *Param:
		if v.Type != nil {
			add(v.Type)
		}
	case *Property:
		if v.Type != nil {
			add(v.Type)
		}
		if v.Init != nil {
			add(v.Init)
		}
		for _, annot := range v.Annotations {
			add(annot)
		}
	case *AnnotationCall:
		for _, arg := range v.Args {
			add(arg)
		}
	case *Call:
		for _, arg := range v.Args {
			add(arg)
		}
	case *SetValue:
		if v.Value != nil {
			add(v.Value)
		}
	case *Return:
		if v.Value != nil {
			add(v.Value)
		}
	case *Block:
		for _, stmt := range v.Stmts {
			add(stmt)
		}
	case *TypeOp:
		if v.Operand != nil {
			add(v.Operand)
		}
		if v.Target != nil {
			add(v.Target)
		}
	}

	return children
}

// Walk traverses the IR tree rooted at node in depth-first pre-order.  The
// visit callback is invoked for each node before its children; returning
// false skips the node's children.
func Walk(node Node, visit func(Node) bool) {
	if node == nil || !visit(node) {
		return
	}

	for _, child := range Children(node) {
		Walk(child, visit)
	}
}

// PatchParents repairs the parent link of every node in the tree rooted at
// root.  It is run after generation and again at the end of post-processing
// because some declarations are generated out of order relative to their
// structural nesting and because post-processing steps may introduce new
// nodes.  The pass is idempotent.
func PatchParents(root Node) {
	for _, child := range Children(root) {
		child.SetParentNode(root)
		PatchParents(child)
	}
}
