package models

const (
	ToastDefault     = "default"
	ToastDestructive = "destructive"
)

type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

// Draft is the diner's editable mirror of the order plus the page state that
// surrounds it. Server is the last order fetched from the API; Local carries
// unsaved edits on top of it.
type Draft struct {
	Server              *Order  `json:"server"`
	Local               *Order  `json:"local"`
	HasUnsavedChanges   bool    `json:"hasUnsavedChanges"`
	PendingDelete       string  `json:"pendingDelete,omitempty"`
	ShowDeleteConfirm   bool    `json:"showDeleteConfirm"`
	ShowCheckoutConfirm bool    `json:"showCheckoutConfirm"`
	Toasts              []Toast `json:"toasts,omitempty"`
}

func (d *Draft) Notify(title, description string) {
	d.Toasts = append(d.Toasts, Toast{Title: title, Description: description, Variant: ToastDefault})
}

func (d *Draft) Fail(title, description string) {
	d.Toasts = append(d.Toasts, Toast{Title: title, Description: description, Variant: ToastDestructive})
}

func (d *Draft) Locked() bool {
	return d.Server != nil && d.Server.Locked
}

func (d *Draft) CloseDeleteDialog() {
	d.ShowDeleteConfirm = false
	d.PendingDelete = ""
}

type PendingState struct {
	Save     bool `json:"save"`
	Remove   bool `json:"remove"`
	Checkout bool `json:"checkout"`
}

// PesananView is everything the order page needs to render.
type PesananView struct {
	Order               *Order       `json:"order"`
	NomorMeja           string       `json:"nomorMeja"`
	Locked              bool         `json:"locked"`
	HasUnsavedChanges   bool         `json:"hasUnsavedChanges"`
	CanSave             bool         `json:"canSave"`
	CanCheckout         bool         `json:"canCheckout"`
	PendingDelete       string       `json:"pendingDelete,omitempty"`
	ShowDeleteConfirm   bool         `json:"showDeleteConfirm"`
	ShowCheckoutConfirm bool         `json:"showCheckoutConfirm"`
	Pending             PendingState `json:"pending"`
	Toasts              []Toast      `json:"toasts,omitempty"`
}

func (v *PesananView) Empty() bool {
	return v.Order == nil || len(v.Order.Items) == 0
}

func (v *PesananView) EditDisabled() bool {
	return v.Pending.Save || v.Pending.Remove || v.Locked
}
