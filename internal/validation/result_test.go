package validation

import (
	"testing"
)

func TestIssue_Error(t *testing.T) {
	tests := []struct {
		name string
		i    Issue
		want string
	}{
		{
			name: "schema issue with path",
			i: Issue{
				Kind:    KindSchema,
				Path:    "compute_instances[0].replicas",
				Message: "invalid type, expected integer",
			},
			want: `schema: at "compute_instances[0].replicas": invalid type, expected integer`,
		},
		{
			name: "policy issue without path",
			i: Issue{
				Kind:    KindPolicy,
				Message: "instance 'web' uses undefined security group 'admin-sg'",
			},
			want: "policy: instance 'web' uses undefined security group 'admin-sg'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.i.Error(); got != tt.want {
				t.Errorf("Issue.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResult_Helpers(t *testing.T) {
	var r Result

	if !r.OK() {
		t.Error("empty result should be OK")
	}

	r.Add(KindSchema, "databases[0]", "missing property %q", "engine")
	r.Add(KindPolicy, "", "instance %q has no security groups", "web")

	if r.OK() {
		t.Error("result with issues should not be OK")
	}
	if got := len(r.ByKind(KindSchema)); got != 1 {
		t.Errorf("len(ByKind(schema)) = %d, want 1", got)
	}
	if got := r.Issues[0].Message; got != `missing property "engine"` {
		t.Errorf("Message = %q", got)
	}

	var other Result
	other.Add(KindPolicy, "", "retention too low")
	r.Merge(&other)
	if got := len(r.Issues); got != 3 {
		t.Errorf("len(Issues) after Merge = %d, want 3", got)
	}

	r.Merge(nil)
	if got := len(r.Issues); got != 3 {
		t.Errorf("Merge(nil) changed issue count to %d", got)
	}
}

func TestResult_NilReceiver(t *testing.T) {
	var r *Result
	if !r.OK() {
		t.Error("nil result should be OK")
	}
	if r.ByKind(KindSchema) != nil {
		t.Error("nil result should have no issues")
	}
}
