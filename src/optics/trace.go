package optics

import "log/slog"

// Trace returns an optic of the same kind that logs every operation it runs
// at debug level, tagged with the optic's path. A nil logger disables tracing.
func Trace[K Kind, S, T, A, B any](o Optic[K, S, T, A, B], logger *slog.Logger) Optic[K, S, T, A, B] {
	if logger == nil {
		return o
	}
	traced := Optic[K, S, T, A, B]{name: o.name}
	if view := o.view; view != nil {
		traced.view = func(s S) A {
			logger.Debug("optic view", "optic", o.name, "op", "view")
			return view(s)
		}
	}
	if list := o.list; list != nil {
		traced.list = func(s S) []A {
			foci := list(s)
			logger.Debug("optic list", "optic", o.name, "op", "list", "foci", len(foci))
			return foci
		}
	}
	if mk := o.make; mk != nil {
		traced.make = func(b B) T {
			logger.Debug("optic make", "optic", o.name, "op", "make")
			return mk(b)
		}
	}
	if over := o.over; over != nil {
		traced.over = func(s S, fn func(A) B) T {
			visited := 0
			t := over(s, func(a A) B {
				visited++
				return fn(a)
			})
			logger.Debug("optic over", "optic", o.name, "op", "over", "foci", visited)
			return t
		}
	}
	return traced
}
