package domain

// CheckActorInput is the request body for the actor gate endpoint
type CheckActorInput struct {
	Actor          string `json:"actor" validate:"required,actor_login"`
	AllowAutomated bool   `json:"allow_automated"`
}

// CheckActorOutput reports the gate outcome for an allowed actor
type CheckActorOutput struct {
	Allowed bool   `json:"allowed"`
	Kind    string `json:"kind"`
	Skipped bool   `json:"skipped"`
}

// CheckAccessInput is the request body for the write-access endpoint
type CheckAccessInput struct {
	Actor string `json:"actor" validate:"required,actor_login"`
	Repo  string `json:"repo" validate:"required,repo_full"`
}

// CheckAccessOutput reports the resolved write access and the granting strategy
type CheckAccessOutput struct {
	WriteAccess bool   `json:"write_access"`
	Method      string `json:"method,omitempty"`
}
