package uucp

// Kind names an Entity variant.
type Kind string

const (
	KindMissing Kind = "missing"
	KindMail    Kind = "mail"
	KindNews    Kind = "news"
	KindInvalid Kind = "invalid"
)

// Reasons recorded on Missing entities.
const (
	ReasonNoData    = "no D. file"
	ReasonNoControl = "no C. file"
)

// Entity is the classified record stored per qid. The variants are Missing,
// Mail, News and Invalid; the set is closed by the unexported method.
type Entity interface {
	// ID returns the qid of the entity.
	ID() string
	// Kind returns the variant name.
	Kind() Kind
	// Files returns the batch behind the entity. Invalid entities return a zero Batch.
	Files() Batch

	entity()
}

// Missing is a damaged batch with only one of its two files.
type Missing struct {
	QID    string `json:"qid"`
	File   Batch  `json:"file"`
	Reason string `json:"reason"`
}

// Mail is a batch carrying a mail transfer.
type Mail struct {
	QID    string `json:"qid"`
	File   Batch  `json:"file"`
	Marked bool   `json:"marked"`
}

// News is a batch carrying a news transfer.
type News struct {
	QID    string `json:"qid"`
	File   Batch  `json:"file"`
	Marked bool   `json:"marked"`
}

// Invalid is a qid whose control file could not be classified.
type Invalid struct {
	QID string `json:"qid"`
}

func (e *Missing) ID() string { return e.QID }
func (e *Missing) Kind() Kind { return KindMissing }
func (e *Missing) Files() Batch { return e.File }
func (*Missing) entity() {}

func (e *Mail) ID() string { return e.QID }
func (e *Mail) Kind() Kind { return KindMail }
func (e *Mail) Files() Batch { return e.File }
func (*Mail) entity() {}

func (e *News) ID() string { return e.QID }
func (e *News) Kind() Kind { return KindNews }
func (e *News) Files() Batch { return e.File }
func (*News) entity() {}

func (e *Invalid) ID() string { return e.QID }
func (e *Invalid) Kind() Kind { return KindInvalid }
func (*Invalid) Files() Batch { return Batch{} }
func (*Invalid) entity() {}

// DataMissing reports whether the data file is the absent member.
func (e *Missing) DataMissing() bool {
	return e.File.Data == ""
}

// classify applies the classification rule to one batch. Exactly one member
// present yields Missing; otherwise the control file's transfer type decides.
func classify(qid string, b Batch, transfer func(string) Transfer) Entity {
	switch {
	case b.Control != "" && b.Data == "":
		return &Missing{QID: qid, File: b, Reason: ReasonNoData}
	case b.Control == "" && b.Data != "":
		return &Missing{QID: qid, File: b, Reason: ReasonNoControl}
	case b.Control == "" && b.Data == "":
		return &Invalid{QID: qid}
	}

	switch transfer(b.Control) {
	case TransferMail:
		return &Mail{QID: qid, File: b}
	case TransferNews:
		return &News{QID: qid, File: b}
	default:
		return &Invalid{QID: qid}
	}
}

// marked reports whether e carries a set marked flag.
func marked(e Entity) bool {
	switch v := e.(type) {
	case *Mail:
		return v.Marked
	case *News:
		return v.Marked
	case *Missing, *Invalid:
		return false
	default:
		return false
	}
}
