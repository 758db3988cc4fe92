package gameid

import "testing"

func TestFromSeedIsStable(t *testing.T) {
	t.Parallel()

	if FromSeed(1234) != FromSeed(1234) {
		t.Error("same seed produced different ids")
	}
	if FromSeed(1234) == FromSeed(1235) {
		t.Error("adjacent seeds produced the same id")
	}
}

func TestFromSeedValidates(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{0, 1, -1, 1234, 1 << 50} {
		id := FromSeed(seed)
		if err := Validate(id); err != nil {
			t.Errorf("seed %d: %v", seed, err)
		}
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"", "game_", "game_short", "hand_12345678", "game_ABCDEFGH"} {
		if err := Validate(id); err == nil {
			t.Errorf("Validate(%q) should fail", id)
		}
	}
}
