package role

import "testing"

func TestParse(t *testing.T) {
	for _, valid := range []string{"members", "trainers", "admins"} {
		r, err := Parse(valid)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", valid, err)
		}
		if r.String() != valid {
			t.Errorf("Parse(%q) = %q", valid, r)
		}
	}

	for _, invalid := range []string{"", "member", "Admins", "root", "members; DROP TABLE members"} {
		if _, err := Parse(invalid); err == nil {
			t.Errorf("Parse(%q) should fail", invalid)
		}
	}
}

func TestIDColumn(t *testing.T) {
	cases := map[Role]string{
		Members:  "m_id",
		Trainers: "t_id",
		Admins:   "a_id",
	}
	for r, want := range cases {
		if got := r.IDColumn(); got != want {
			t.Errorf("%s.IDColumn() = %q, want %q", r, got, want)
		}
	}
}

func TestPolicyAllows(t *testing.T) {
	tests := []struct {
		name       string
		policy     Policy
		role       Role
		userID     uint
		resourceID string
		want       bool
	}{
		{
			name:   "role gate accepts listed role",
			policy: Allow(Admins),
			role:   Admins,
			userID: 1,
			want:   true,
		},
		{
			name:   "role gate rejects other role",
			policy: Allow(Admins),
			role:   Members,
			userID: 1,
			want:   false,
		},
		{
			name:       "role-or-self accepts privileged role regardless of id",
			policy:     AllowOrSelf(Members, Admins, Trainers),
			role:       Trainers,
			userID:     9,
			resourceID: "5",
			want:       true,
		},
		{
			name:       "role-or-self accepts matching identity",
			policy:     AllowOrSelf(Members, Admins, Trainers),
			role:       Members,
			userID:     5,
			resourceID: "5",
			want:       true,
		},
		{
			name:       "role-or-self rejects mismatched identity",
			policy:     AllowOrSelf(Members, Admins, Trainers),
			role:       Members,
			userID:     7,
			resourceID: "5",
			want:       false,
		},
		{
			name:       "self rule needs a resource id",
			policy:     AllowOrSelf(Members, Admins),
			role:       Members,
			userID:     5,
			resourceID: "",
			want:       false,
		},
		{
			name:       "self rule only applies to the self role",
			policy:     AllowOrSelf(Trainers, Admins),
			role:       Members,
			userID:     5,
			resourceID: "5",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.policy.Allows(tt.role, tt.userID, tt.resourceID)
			if got != tt.want {
				t.Errorf("Allows(%s, %d, %q) = %v, want %v",
					tt.role, tt.userID, tt.resourceID, got, tt.want)
			}
		})
	}
}
