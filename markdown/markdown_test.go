package markdown

import "testing"

func TestBlocks(t *testing.T) {
	input := "# Budget\n" +
		"\n" +
		"Some notes.\n" +
		"\n" +
		"```sigma\n" +
		"Rent 1200$\n" +
		"  Water 40\n" +
		"```\n" +
		"\n" +
		"```go\n" +
		"fmt.Println(1)\n" +
		"```\n" +
		"\n" +
		"```Sigma\n" +
		"x = 2\n" +
		"```\n"

	blocks := Blocks([]byte(input), "")

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(blocks), blocks)
	}

	if blocks[0].Source != "Rent 1200$\n  Water 40\n" {
		t.Errorf("block 0 source = %q", blocks[0].Source)
	}

	if blocks[0].Line != 5 {
		t.Errorf("block 0 line = %d, want 5", blocks[0].Line)
	}

	if blocks[1].Source != "x = 2\n" {
		t.Errorf("block 1 source = %q", blocks[1].Source)
	}

	if blocks[1].Line != 14 {
		t.Errorf("block 1 line = %d, want 14", blocks[1].Line)
	}
}

func TestBlocks_OtherLanguage(t *testing.T) {
	input := []byte("```csv\na,b\n```\n```sigma\n1\n```\n")

	blocks := Blocks(input, "csv")
	if len(blocks) != 1 || blocks[0].Source != "a,b\n" {
		t.Errorf("Blocks(csv) = %+v", blocks)
	}
}

func TestBlocks_None(t *testing.T) {
	if blocks := Blocks([]byte("plain text\n\n    indented code\n"), ""); len(blocks) != 0 {
		t.Errorf("expected no blocks, got %+v", blocks)
	}
}
