package decision

// ExprEnv flattens a state into the variable map used by expression-based
// rule predicates: each answered question contributes "<id>_answer" with its
// selections, each flag its boolean under the bare flag name, and the
// obligation set is exposed as "obligations". Membership is the expected
// idiom: `"provider" in Q2_answer`.
func ExprEnv(s State) map[string]any {
	env := make(map[string]any)
	for _, a := range s.Answers() {
		vs := make([]string, len(a.Values))
		copy(vs, a.Values)
		env[a.QuestionID+"_answer"] = vs
	}
	for name, v := range s.Flags() {
		env[name] = v
	}
	env["obligations"] = s.Obligations()
	return env
}
