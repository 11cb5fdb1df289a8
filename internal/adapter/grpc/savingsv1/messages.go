package savingsv1

// Empty is returned by calls that produce no data.
type Empty struct{}

// IDRequest addresses a single record by id.
type IDRequest struct {
	Id string `json:"id"`
}

type Account struct {
	Id          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	ChildId     string `json:"child_id,omitempty"`
	DateOfBirth string `json:"date_of_birth"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type CreateAccountRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role,omitempty"`
	ChildId     string `json:"child_id,omitempty"`
	DateOfBirth string `json:"date_of_birth"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AccountResponse struct {
	Account *Account `json:"account"`
}

type Customer struct {
	Id       string `json:"id"`
	ParentId string `json:"parent_id"`
	ChildId  string `json:"child_id"`
}

type CreateCustomerRequest struct {
	ParentId string `json:"parent_id"`
	ChildId  string `json:"child_id"`
}

type CustomerResponse struct {
	Customer *Customer `json:"customer"`
}

type Milestone struct {
	Id             string `json:"id"`
	OwnerId        string `json:"owner_id"`
	Name           string `json:"name"`
	TargetAmount   string `json:"target_amount"`
	SavedAmount    string `json:"saved_amount"`
	StartDate      string `json:"start_date"`
	CompletionDate string `json:"completion_date,omitempty"`
	Status         string `json:"status"`
}

type CreateMilestoneRequest struct {
	OwnerId      string `json:"owner_id"`
	Name         string `json:"name"`
	TargetAmount string `json:"target_amount"`
	StartDate    string `json:"start_date"`
	SavedAmount  string `json:"saved_amount,omitempty"` // optional initial amount
}

type MilestoneResponse struct {
	Milestone *Milestone `json:"milestone"`
}

type MilestoneListResponse struct {
	Milestones []*Milestone `json:"milestones"`
}

type GetMilestoneByNameRequest struct {
	Name string `json:"name"`
}

// DateRequest selects records by calendar date.
type DateRequest struct {
	Date string `json:"date"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type OwnerRequest struct {
	OwnerId string `json:"owner_id"`
}

type AddToMilestoneRequest struct {
	Id     string `json:"id"`
	Amount string `json:"amount"`
}

type SavingsEntry struct {
	Id          string `json:"id"`
	OwnerId     string `json:"owner_id"`
	MilestoneId string `json:"milestone_id"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
}

type CreateSavingsRequest struct {
	OwnerId     string `json:"owner_id"`
	MilestoneId string `json:"milestone_id"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
}

type SavingsResponse struct {
	Savings *SavingsEntry `json:"savings"`
}

type SavingsListResponse struct {
	Savings []*SavingsEntry `json:"savings"`
}

type GetSavingsByMilestoneRequest struct {
	MilestoneId string `json:"milestone_id"`
}

type OwnerProgress struct {
	OwnerId          string `json:"owner_id"`
	TotalTarget      string `json:"total_target"`
	TotalSaved       string `json:"total_saved"`
	TotalContributed string `json:"total_contributed"`
	ActiveCount      int32  `json:"active_count"`
	CompletedCount   int32  `json:"completed_count"`
}

type OwnerProgressResponse struct {
	Progress *OwnerProgress `json:"progress"`
}
