package git

import (
	"reflect"
	"testing"
)

func TestSwitchArgs(t *testing.T) {
	if got, want := switchArgs("feature-x", false), []string{"switch", "feature-x"}; !reflect.DeepEqual(got, want) {
		t.Errorf("switchArgs = %v, want %v", got, want)
	}
	if got, want := switchArgs("feature-x", true), []string{"switch", "-c", "feature-x"}; !reflect.DeepEqual(got, want) {
		t.Errorf("switchArgs create = %v, want %v", got, want)
	}
}

func TestPushArgs(t *testing.T) {
	if got, want := pushArgs("origin", "main", false), []string{"push", "origin", "main"}; !reflect.DeepEqual(got, want) {
		t.Errorf("pushArgs = %v, want %v", got, want)
	}
	if got, want := pushArgs("origin", "main", true), []string{"push", "--set-upstream", "origin", "main"}; !reflect.DeepEqual(got, want) {
		t.Errorf("pushArgs upstream = %v, want %v", got, want)
	}
}

func TestPullArgs(t *testing.T) {
	if got, want := pullArgs("origin", "main"), []string{"pull", "origin", "main"}; !reflect.DeepEqual(got, want) {
		t.Errorf("pullArgs = %v, want %v", got, want)
	}
}

func TestGitArgs(t *testing.T) {
	if got, want := gitArgs("", []string{"status"}), []string{"status"}; !reflect.DeepEqual(got, want) {
		t.Errorf("gitArgs no dir = %v, want %v", got, want)
	}
	if got, want := gitArgs("/repo", []string{"status"}), []string{"-C", "/repo", "status"}; !reflect.DeepEqual(got, want) {
		t.Errorf("gitArgs with dir = %v, want %v", got, want)
	}
}
