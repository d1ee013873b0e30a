package services

import (
	"sort"
	"sync"
	"time"

	"brandmatch_backend/internal/email"
	"brandmatch_backend/internal/models"
	"brandmatch_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repository fakes. They mirror the gorm-backed implementations
// closely enough to exercise the services, including preloads and the
// composite-unique rule on applications.

type fakeUserRepo struct {
	users             map[string]*models.User
	campaignCounts    map[string]int64
	applicationCounts map[string]int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:             map[string]*models.User{},
		campaignCounts:    map[string]int64{},
		applicationCounts: map[string]int64{},
	}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByExternalID(externalID string) (*models.User, error) {
	for _, user := range r.users {
		if user.ExternalID == externalID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdateFields(userID string, fields map[string]interface{}) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	for key, val := range fields {
		switch key {
		case "name":
			user.Name = val.(string)
		case "email":
			v := val.(string)
			user.Email = &v
		case "bio":
			v := val.(string)
			user.Bio = &v
		case "niche":
			v := val.(string)
			user.Niche = &v
		case "avatar_url":
			v := val.(string)
			user.AvatarURL = &v
		}
	}
	return nil
}

func (r *fakeUserRepo) CountCampaigns(userID string) (int64, error) {
	return r.campaignCounts[userID], nil
}

func (r *fakeUserRepo) CountApplications(userID string) (int64, error) {
	return r.applicationCounts[userID], nil
}

type fakeCampaignRepo struct {
	campaigns map[string]*models.Campaign
	users     *fakeUserRepo
	appRepo   *fakeApplicationRepo
}

func newFakeCampaignRepo(users *fakeUserRepo) *fakeCampaignRepo {
	return &fakeCampaignRepo{campaigns: map[string]*models.Campaign{}, users: users}
}

func (r *fakeCampaignRepo) Create(campaign *models.Campaign) error {
	if campaign.ID == "" {
		campaign.ID = uuid.NewString()
	}
	campaign.CreatedAt = time.Now()
	copied := *campaign
	r.campaigns[campaign.ID] = &copied
	return nil
}

func (r *fakeCampaignRepo) FindByID(id string) (*models.Campaign, error) {
	campaign, ok := r.campaigns[id]
	if !ok {
		return nil, repositories.ErrCampaignNotFound
	}
	copied := *campaign
	if r.users != nil {
		if brand, err := r.users.FindByID(copied.BrandID); err == nil {
			copied.Brand = brand
		}
	}
	return &copied, nil
}

func (r *fakeCampaignRepo) Save(campaign *models.Campaign) error {
	if _, ok := r.campaigns[campaign.ID]; !ok {
		return repositories.ErrCampaignNotFound
	}
	copied := *campaign
	copied.Brand = nil
	r.campaigns[campaign.ID] = &copied
	return nil
}

func (r *fakeCampaignRepo) Delete(id string) error {
	if _, ok := r.campaigns[id]; !ok {
		return repositories.ErrCampaignNotFound
	}
	delete(r.campaigns, id)
	return nil
}

func (r *fakeCampaignRepo) FindWithFilter(filter repositories.CampaignFilter) ([]models.Campaign, error) {
	var out []models.Campaign
	for _, campaign := range r.campaigns {
		if filter.Status != "" && campaign.Status != filter.Status {
			continue
		}
		if filter.BrandID != "" && campaign.BrandID != filter.BrandID {
			continue
		}
		copied := *campaign
		if r.users != nil {
			if brand, err := r.users.FindByID(copied.BrandID); err == nil {
				copied.Brand = brand
			}
		}
		out = append(out, copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeCampaignRepo) CountApplications(campaignID string) (int64, error) {
	if r.appRepo == nil {
		return 0, nil
	}
	var count int64
	for _, app := range r.appRepo.applications {
		if app.CampaignID == campaignID {
			count++
		}
	}
	return count, nil
}

func (r *fakeCampaignRepo) CountApplicationsFor(campaignIDs []string) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, id := range campaignIDs {
		count, _ := r.CountApplications(id)
		if count > 0 {
			counts[id] = count
		}
	}
	return counts, nil
}

type fakeApplicationRepo struct {
	applications map[string]*models.Application
	users        *fakeUserRepo
	campaigns    *fakeCampaignRepo
}

func newFakeApplicationRepo(users *fakeUserRepo, campaigns *fakeCampaignRepo) *fakeApplicationRepo {
	repo := &fakeApplicationRepo{
		applications: map[string]*models.Application{},
		users:        users,
		campaigns:    campaigns,
	}
	if campaigns != nil {
		campaigns.appRepo = repo
	}
	return repo
}

func (r *fakeApplicationRepo) Create(application *models.Application) error {
	for _, existing := range r.applications {
		if existing.CampaignID == application.CampaignID && existing.CreatorID == application.CreatorID {
			return repositories.ErrDuplicateApplication
		}
	}
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	application.CreatedAt = time.Now()
	copied := *application
	r.applications[application.ID] = &copied
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	return r.preload(application), nil
}

func (r *fakeApplicationRepo) FindByCampaignAndCreator(campaignID, creatorID string) (*models.Application, error) {
	for _, application := range r.applications {
		if application.CampaignID == campaignID && application.CreatorID == creatorID {
			return r.preload(application), nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) error {
	application, ok := r.applications[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	application.Status = status
	return nil
}

func (r *fakeApplicationRepo) FindWithFilter(filter repositories.ApplicationFilter) ([]models.Application, error) {
	var out []models.Application
	for _, application := range r.applications {
		if filter.CreatorID != "" && application.CreatorID != filter.CreatorID {
			continue
		}
		if filter.CampaignID != "" && application.CampaignID != filter.CampaignID {
			continue
		}
		if filter.Status != "" && application.Status != filter.Status {
			continue
		}
		if filter.BrandID != "" {
			campaign, err := r.campaigns.FindByID(application.CampaignID)
			if err != nil || campaign.BrandID != filter.BrandID {
				continue
			}
		}
		out = append(out, *r.preload(application))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeApplicationRepo) preload(application *models.Application) *models.Application {
	copied := *application
	if r.users != nil {
		if creator, err := r.users.FindByID(copied.CreatorID); err == nil {
			copied.Creator = creator
		}
	}
	if r.campaigns != nil {
		if campaign, err := r.campaigns.FindByID(copied.CampaignID); err == nil {
			copied.Campaign = campaign
		}
	}
	return &copied
}

type fakeMessageRepo struct {
	messages []*models.Message
	users    *fakeUserRepo
}

func newFakeMessageRepo(users *fakeUserRepo) *fakeMessageRepo {
	return &fakeMessageRepo{users: users}
}

func (r *fakeMessageRepo) Create(message *models.Message) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) FindByID(id string) (*models.Message, error) {
	for _, message := range r.messages {
		if message.ID == id {
			copied := *message
			return &copied, nil
		}
	}
	return nil, repositories.ErrMessageNotFound
}

func (r *fakeMessageRepo) ListBetween(userID, partnerID string) ([]models.Message, error) {
	var out []models.Message
	for _, message := range r.messages {
		if betweenPair(message, userID, partnerID) {
			out = append(out, *message)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeMessageRepo) LatestBetween(userID, partnerID string) (*models.Message, error) {
	var latest *models.Message
	for _, message := range r.messages {
		if !betweenPair(message, userID, partnerID) {
			continue
		}
		if latest == nil || message.CreatedAt.After(latest.CreatedAt) {
			latest = message
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (r *fakeMessageRepo) DistinctPartnerIDs(userID string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, message := range r.messages {
		var partner string
		switch userID {
		case message.SenderID:
			partner = message.ReceiverID
		case message.ReceiverID:
			partner = message.SenderID
		default:
			continue
		}
		if !seen[partner] {
			seen[partner] = true
			out = append(out, partner)
		}
	}
	return out, nil
}

func betweenPair(message *models.Message, userID, partnerID string) bool {
	return (message.SenderID == userID && message.ReceiverID == partnerID) ||
		(message.SenderID == partnerID && message.ReceiverID == userID)
}

type fakePayoutRepo struct {
	payouts []*models.Payout
}

func newFakePayoutRepo() *fakePayoutRepo {
	return &fakePayoutRepo{}
}

func (r *fakePayoutRepo) Create(payout *models.Payout) error {
	if payout.ID == "" {
		payout.ID = uuid.NewString()
	}
	payout.CreatedAt = time.Now()
	copied := *payout
	r.payouts = append(r.payouts, &copied)
	return nil
}

func (r *fakePayoutRepo) ListByCreator(creatorID string) ([]models.Payout, error) {
	var out []models.Payout
	for _, payout := range r.payouts {
		if payout.CreatorID == creatorID {
			out = append(out, *payout)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// fakeEmailProvider records sends. Safe for the async decision
// notifications.
type fakeEmailProvider struct {
	mu   sync.Mutex
	sent []*email.Email
}

func (p *fakeEmailProvider) Send(e *email.Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, e)
	return nil
}

func (p *fakeEmailProvider) Validate() error { return nil }
func (p *fakeEmailProvider) Close() error    { return nil }

func (p *fakeEmailProvider) sentCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sent)
}

func (p *fakeEmailProvider) lastSent() *email.Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.sent) == 0 {
		return nil
	}
	return p.sent[len(p.sent)-1]
}

// Test fixture helpers.

func newTestUser(role models.UserRole) *models.User {
	return &models.User{
		BaseModel:  models.BaseModel{ID: uuid.NewString(), CreatedAt: time.Now()},
		ExternalID: "ext-" + uuid.NewString(),
		Name:       "Test " + string(role),
		Role:       role,
	}
}

func addUser(repo *fakeUserRepo, user *models.User) *models.User {
	copied := *user
	repo.users[user.ID] = &copied
	return user
}
