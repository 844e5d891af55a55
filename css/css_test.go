package css

import "testing"

func TestNewStylesheetHasRootNode(t *testing.T) {
	s := NewStylesheet()
	if s.Node(s.Root).Kind != KindRoot {
		t.Errorf("root node Kind = %v, want KindRoot", s.Node(s.Root).Kind)
	}
	if len(s.Children(s.Root)) != 0 {
		t.Errorf("fresh root should have no children")
	}
}

func TestAddChildSetsParentAndAppendsToChildren(t *testing.T) {
	s := NewStylesheet()
	id := s.AddChild(s.Root, Node{Kind: KindDeclaration, Property: "color", DeclValue: "red"})

	if s.Node(id).Parent != s.Root {
		t.Errorf("Parent = %v, want root", s.Node(id).Parent)
	}
	children := s.Children(s.Root)
	if len(children) != 1 || children[0] != id {
		t.Errorf("Children(root) = %v, want [%v]", children, id)
	}
}

func TestWalkVisitsInDocumentOrder(t *testing.T) {
	s := NewStylesheet()
	a := s.AddChild(s.Root, Node{Kind: KindDeclaration, Property: "a"})
	b := s.AddChild(s.Root, Node{Kind: KindDeclaration, Property: "b"})
	c := s.AddChild(a, Node{Kind: KindDeclaration, Property: "c"})

	var visited []NodeID
	s.Walk(s.Root, func(id NodeID, n *Node) {
		visited = append(visited, id)
	})

	want := []NodeID{s.Root, a, c, b}
	if len(visited) != len(want) {
		t.Fatalf("visited = %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %v, want %v", i, visited[i], want[i])
		}
	}
}

func TestRemoveEmptyGroupsDropsEmptyStyleRule(t *testing.T) {
	s := NewStylesheet()
	s.AddChild(s.Root, Node{Kind: KindStyleRule})

	s.RemoveEmptyGroups(s.Root)

	if len(s.Children(s.Root)) != 0 {
		t.Errorf("Children(root) = %v, want empty (the style rule has no declarations)", s.Children(s.Root))
	}
}

func TestRemoveEmptyGroupsKeepsStyleRuleWithDeclaration(t *testing.T) {
	s := NewStylesheet()
	rule := s.AddChild(s.Root, Node{Kind: KindStyleRule})
	s.AddChild(rule, Node{Kind: KindDeclaration, Property: "color", DeclValue: "red"})

	s.RemoveEmptyGroups(s.Root)

	if len(s.Children(s.Root)) != 1 {
		t.Errorf("Children(root) = %v, want 1 (the style rule should survive)", s.Children(s.Root))
	}
}

func TestRemoveEmptyGroupsKeepsChildlessAtRule(t *testing.T) {
	s := NewStylesheet()
	s.AddChild(s.Root, Node{Kind: KindAtRule, Name: "charset", Childless: true})

	s.RemoveEmptyGroups(s.Root)

	if len(s.Children(s.Root)) != 1 {
		t.Errorf("Children(root) = %v, want 1 (a childless at-rule is always kept)", s.Children(s.Root))
	}
}

func TestRemoveEmptyGroupsDropsEmptyNestedMediaRule(t *testing.T) {
	s := NewStylesheet()
	media := s.AddChild(s.Root, Node{Kind: KindMediaRule, MediaQuery: "screen"})
	rule := s.AddChild(media, Node{Kind: KindStyleRule})
	_ = rule // empty style rule inside: both should be dropped

	s.RemoveEmptyGroups(s.Root)

	if len(s.Children(s.Root)) != 0 {
		t.Errorf("Children(root) = %v, want empty (media rule's only child was an empty style rule)", s.Children(s.Root))
	}
}

func TestAddChildMarksPreviousSiblingGroupEndWhenNextOpensAGroup(t *testing.T) {
	s := NewStylesheet()
	a := s.AddChild(s.Root, Node{Kind: KindStyleRule})
	if s.Node(a).IsGroupEnd {
		t.Error("first child should not be marked IsGroupEnd yet")
	}

	s.AddChild(s.Root, Node{Kind: KindStyleRule})
	if !s.Node(a).IsGroupEnd {
		t.Error("a should become IsGroupEnd once a second style rule follows it")
	}
}

func TestAddChildDoesNotMarkGroupEndForADeclaration(t *testing.T) {
	s := NewStylesheet()
	rule := s.AddChild(s.Root, Node{Kind: KindStyleRule})
	s.AddChild(rule, Node{Kind: KindDeclaration, Property: "color", DeclValue: "red"})
	s.AddChild(rule, Node{Kind: KindDeclaration, Property: "width", DeclValue: "1px"})

	for _, id := range s.Children(rule) {
		if s.Node(id).IsGroupEnd {
			t.Errorf("declaration %v should not be marked IsGroupEnd", id)
		}
	}
}

func TestRemoveEmptyGroupsKeepsComment(t *testing.T) {
	s := NewStylesheet()
	s.AddChild(s.Root, Node{Kind: KindComment, Text: "/* keep me */"})

	s.RemoveEmptyGroups(s.Root)

	if len(s.Children(s.Root)) != 1 {
		t.Errorf("Children(root) = %v, want 1 (comments are always kept)", s.Children(s.Root))
	}
}
