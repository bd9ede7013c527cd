package core

import (
	"fmt"
	"io"

	"github.com/bshepherdson/mal/eval"
	"github.com/bshepherdson/mal/reader"
	"github.com/bshepherdson/mal/types"
)

// Functions defined in mal itself.
var Prelude = []string{
	"(def! not (fn* (a) (if a false true)))",
	"(def! inc (fn* (n) (+ n 1)))",
	"(def! dec (fn* (n) (- n 1)))",
	"(defmacro! cond (fn* (& xs) (if (> (count xs) 0) (list 'if (first xs) (nth xs 1) (cons 'cond (rest (rest xs)))))))",
	"(defmacro! or (fn* (& xs) (if (empty? xs) nil (if (= 1 (count xs)) (first xs) `(let* (or_inner ~(first xs)) (if or_inner or_inner (or ~@(rest xs))))))))",
	"(defmacro! and (fn* (& xs) (if (empty? xs) true (if (= 1 (count xs)) (first xs) `(if ~(first xs) (and ~@(rest xs)) false)))))",
	"(defmacro! when (fn* (c & body) `(if ~c (do ~@body))))",
}

// Global builds the top-level environment: every native from Namespace,
// followed by the Prelude.
func Global(out io.Writer) (*types.Env, error) {
	env := types.NewEnv(nil)
	for name, fn := range Namespace(out) {
		env.Set(name, &types.DNative{Name: name, Fn: fn})
	}

	for _, src := range Prelude {
		if _, err := Rep(src, env); err != nil {
			return nil, fmt.Errorf("prelude %q: %w", src, err)
		}
	}
	return env, nil
}

// Rep reads and evaluates every form in src, returning the value of the last.
func Rep(src string, env *types.Env) (types.Data, error) {
	forms, err := reader.ReadAll(src)
	if err != nil {
		return nil, err
	}

	var result types.Data = types.Nil
	for _, form := range forms {
		result, err = eval.Eval(form, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
