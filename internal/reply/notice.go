package reply

// Variant selects how a notice is presented.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDestructive
)

func (v Variant) String() string {
	if v == VariantDestructive {
		return "destructive"
	}
	return "default"
}

// Notice is a user-facing notification emitted by a workflow transition.
type Notice struct {
	Title       string
	Description string
	Variant     Variant
}

// IsZero reports whether there is nothing to show.
func (n Notice) IsZero() bool {
	return n.Title == "" && n.Description == ""
}

// String renders the notice on one line.
func (n Notice) String() string {
	if n.Description == "" {
		return n.Title
	}
	return n.Title + " " + n.Description
}

var (
	NoticeMissingInformation = Notice{
		Title:       "Missing Information",
		Description: "Please provide the original email and select a tone.",
		Variant:     VariantDestructive,
	}
	NoticeGenerated = Notice{
		Title:       "Reply Generated Successfully!",
		Description: "Your professional email reply is ready.",
	}
	NoticeGenerationFailed = Notice{
		Title:       "Generation Failed",
		Description: "Unable to generate reply. Please check if the backend service is running.",
		Variant:     VariantDestructive,
	}
	NoticeCopied = Notice{
		Title:       "Copied to Clipboard",
		Description: "The email reply has been copied successfully.",
	}
	NoticeCopyFailed = Notice{
		Title:       "Copy Failed",
		Description: "Unable to copy to clipboard.",
		Variant:     VariantDestructive,
	}
	NoticeDownloadStarted = Notice{
		Title:       "Download Started",
		Description: "Your email reply is being downloaded.",
	}
)
