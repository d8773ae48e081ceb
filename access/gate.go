package access

// Outcome is the result of evaluating the route gate.
type Outcome string

const (
	OutcomeLoading              Outcome = "loading"
	OutcomeRedirectLogin        Outcome = "redirect_login"
	OutcomeRedirectUnauthorized Outcome = "redirect_unauthorized"
	OutcomeRender               Outcome = "render"
)

const (
	DefaultLoginPath        = "/login"
	DefaultUnauthorizedPath = "/unauthorized"
)

// GateState is the slice of auth state the gate looks at.
type GateState struct {
	Loading         bool `json:"loading"`
	IsAuthenticated bool `json:"is_authenticated"`
	Role            Role `json:"role"`
}

// Decision tells the caller what to do with a guarded request.
// Replace is set for redirects that must not leave the guarded page in history.
type Decision struct {
	Outcome  Outcome `json:"outcome"`
	Redirect string  `json:"redirect,omitempty"`
	Replace  bool    `json:"replace,omitempty"`
}

// Gate evaluates role-restricted access. The zero value redirects to the
// default login and unauthorized paths.
type Gate struct {
	LoginPath        string
	UnauthorizedPath string
}

func NewGate(loginPath, unauthorizedPath string) Gate {
	return Gate{LoginPath: loginPath, UnauthorizedPath: unauthorizedPath}
}

// Decide applies the gate rules in order: loading, authentication, role
// membership. An empty allowed list admits any authenticated role. Roles are
// compared by exact match.
func (g Gate) Decide(state GateState, allowed []Role) Decision {
	if state.Loading {
		return Decision{Outcome: OutcomeLoading}
	}
	if !state.IsAuthenticated {
		return Decision{Outcome: OutcomeRedirectLogin, Redirect: g.loginPath(), Replace: true}
	}
	if len(allowed) > 0 && !contains(allowed, state.Role) {
		return Decision{Outcome: OutcomeRedirectUnauthorized, Redirect: g.unauthorizedPath()}
	}
	return Decision{Outcome: OutcomeRender}
}

// Decide evaluates state against allowed using the default paths.
func Decide(state GateState, allowed []Role) Decision {
	return Gate{}.Decide(state, allowed)
}

func (g Gate) loginPath() string {
	if g.LoginPath == "" {
		return DefaultLoginPath
	}
	return g.LoginPath
}

func (g Gate) unauthorizedPath() string {
	if g.UnauthorizedPath == "" {
		return DefaultUnauthorizedPath
	}
	return g.UnauthorizedPath
}

func contains(roles []Role, r Role) bool {
	for _, candidate := range roles {
		if candidate == r {
			return true
		}
	}
	return false
}
