package model

// TransactionType classifies a transaction as a credit (income) or a debit (outcome).
// The id is fixed at construction; only the description may change afterwards.
type TransactionType struct {
	id          string
	description string
	isCredit    bool
}

// NewTransactionType creates a TransactionType. isCredit is optional and defaults to false (debit).
func NewTransactionType(id, description string, isCredit ...bool) TransactionType {
	credit := false
	if len(isCredit) > 0 {
		credit = isCredit[0]
	}
	return TransactionType{
		id:          id,
		description: description,
		isCredit:    credit,
	}
}

func (t TransactionType) ID() string {
	return t.id
}

func (t TransactionType) Description() string {
	return t.description
}

func (t TransactionType) IsCredit() bool {
	return t.isCredit
}

// SetDescription replaces the description in place.
func (t *TransactionType) SetDescription(description string) {
	t.description = description
}

// EntityID lets TransactionType be held in keyed collections.
func (t TransactionType) EntityID() string {
	return t.id
}
