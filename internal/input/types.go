package input

// MDFExtension is the only extension picked up by a directory scan.
const MDFExtension = ".mf4"

type SourceItem struct {
	SourcePath string
	Raw        string
}
