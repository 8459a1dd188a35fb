package model

import "testing"

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		role     string
		minimum  string
		expected bool
	}{
		{UserTypeOwner, UserTypeOwner, true},
		{UserTypeOwner, UserTypeWorker, true},
		{UserTypeWorker, UserTypeOwner, false},
		{UserTypeWorker, UserTypeWorker, true},
		// Unknown types fail-closed.
		{"unknown", UserTypeWorker, false},
		{UserTypeOwner, "unknown", false},
		{"", "", false},
		{"", UserTypeWorker, false},
		{"Owner", UserTypeOwner, false},
	}

	for _, tt := range tests {
		got := RoleAtLeast(tt.role, tt.minimum)
		if got != tt.expected {
			t.Errorf("RoleAtLeast(%q, %q) = %v, want %v", tt.role, tt.minimum, got, tt.expected)
		}
	}
}

func TestSessionCanDelete(t *testing.T) {
	owner := User{ID: 1, Username: "owner", Password: "owner123", UserType: UserTypeOwner}.Session()
	if !owner.CanDelete() {
		t.Error("expected owner to be allowed to delete")
	}

	worker := Session{ID: 2, Username: "worker", UserType: UserTypeWorker}
	if worker.CanDelete() {
		t.Error("expected worker to be denied delete")
	}
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		username string
		password string
		wantErr  bool
	}{
		{"", "", true},
		{"alice", "", true},
		{"   ", "secret", true},
		{"alice", "x", false},
		{"alice", "a-valid-password", false},
	}

	for _, tt := range tests {
		err := ValidateCredentials(tt.username, tt.password)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCredentials(%q, %q) error = %v, wantErr %v", tt.username, tt.password, err, tt.wantErr)
		}
	}
}
