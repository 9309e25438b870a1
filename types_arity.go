package ecs

// Types1 through Types8 build the []ComponentDef slice passed to NewManager
// from the type parameters themselves, in declaration order. Go has no
// variadic generics, so this family is generated up to a fixed arity (eight
// component types). ApplySystem/Tuple are capped separately, at four; see
// DESIGN.md for the rationale.
func Types1[T0 any]() []ComponentDef {
	return []ComponentDef{Def[T0]()}
}

func Types2[T0, T1 any]() []ComponentDef {
	return []ComponentDef{Def[T0](), Def[T1]()}
}

func Types3[T0, T1, T2 any]() []ComponentDef {
	return []ComponentDef{Def[T0](), Def[T1](), Def[T2]()}
}

func Types4[T0, T1, T2, T3 any]() []ComponentDef {
	return []ComponentDef{Def[T0](), Def[T1](), Def[T2](), Def[T3]()}
}

func Types5[T0, T1, T2, T3, T4 any]() []ComponentDef {
	return []ComponentDef{Def[T0](), Def[T1](), Def[T2](), Def[T3](), Def[T4]()}
}

func Types6[T0, T1, T2, T3, T4, T5 any]() []ComponentDef {
	return []ComponentDef{Def[T0](), Def[T1](), Def[T2](), Def[T3](), Def[T4](), Def[T5]()}
}

func Types7[T0, T1, T2, T3, T4, T5, T6 any]() []ComponentDef {
	return []ComponentDef{
		Def[T0](), Def[T1](), Def[T2](), Def[T3](),
		Def[T4](), Def[T5](), Def[T6](),
	}
}

func Types8[T0, T1, T2, T3, T4, T5, T6, T7 any]() []ComponentDef {
	return []ComponentDef{
		Def[T0](), Def[T1](), Def[T2](), Def[T3](),
		Def[T4](), Def[T5](), Def[T6](), Def[T7](),
	}
}
