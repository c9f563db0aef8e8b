package common

import "testing"

func TestUnifyAddress(t *testing.T) {
	// checksum casing is normalized
	got, err := UnifyAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	if err != nil {
		t.Fatalf("unify: %v", err)
	}
	if got != "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed" {
		t.Errorf("unexpected checksum form: %s", got)
	}

	// already-checksummed input is unchanged
	got, err = UnifyAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	if err != nil {
		t.Fatalf("unify: %v", err)
	}
	if got != "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed" {
		t.Errorf("checksummed input changed: %s", got)
	}

	for _, bad := range []string{"", "0x", "abc", "0x123", "0xZZ11111111111111111111111111111111111111"} {
		if _, err := UnifyAddress(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
