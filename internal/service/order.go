package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gametop-backend/internal/model"
	"gametop-backend/internal/repository"
)

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrPackageRequired  = errors.New("a package must be selected")
	ErrPackageUnknown   = errors.New("package does not belong to the selected game")
	ErrGameNameRequired = errors.New("game name is required")
	ErrCountryRequired  = errors.New("country is required")
	ErrCityRequired     = errors.New("city is required")
	ErrEmailRequired    = errors.New("email is required")
)

// OrderService validates order drafts and renders valid ones into the
// WhatsApp hand-off message. Drafts are transient; nothing is stored.
type OrderService struct {
	catalogRepo    *repository.CatalogRepository
	whatsappNumber string
	notifier       *OrderNotifier
}

func NewOrderService(catalogRepo *repository.CatalogRepository, whatsappNumber string, notifier *OrderNotifier) *OrderService {
	return &OrderService{
		catalogRepo:    catalogRepo,
		whatsappNumber: whatsappNumber,
		notifier:       notifier,
	}
}

// Validate checks the draft against the catalog and returns the first unmet
// requirement. Contact fields only need to be non-empty after trimming; no
// format validation is applied.
func (s *OrderService) Validate(draft *model.OrderDraft) (model.Game, model.TopUpPackage, error) {
	game, ok := s.catalogRepo.Get(draft.GameID)
	if !ok {
		return model.Game{}, model.TopUpPackage{}, ErrGameNotFound
	}
	if draft.PackageID == "" {
		return model.Game{}, model.TopUpPackage{}, ErrPackageRequired
	}
	pkg, ok := s.catalogRepo.Package(draft.GameID, draft.PackageID)
	if !ok {
		return model.Game{}, model.TopUpPackage{}, ErrPackageUnknown
	}
	if game.ID == model.OtherGameID && strings.TrimSpace(draft.CustomGameName) == "" {
		return model.Game{}, model.TopUpPackage{}, ErrGameNameRequired
	}
	if strings.TrimSpace(draft.Country) == "" {
		return model.Game{}, model.TopUpPackage{}, ErrCountryRequired
	}
	if strings.TrimSpace(draft.City) == "" {
		return model.Game{}, model.TopUpPackage{}, ErrCityRequired
	}
	if strings.TrimSpace(draft.Email) == "" {
		return model.Game{}, model.TopUpPackage{}, ErrEmailRequired
	}
	return game, pkg, nil
}

// Dispatch renders a valid draft into the order message and its deep link.
// The hand-off is advisory: opening the link is the caller's side effect and
// no delivery confirmation ever comes back.
func (s *OrderService) Dispatch(draft *model.OrderDraft) (*model.OrderDispatch, error) {
	game, pkg, err := s.Validate(draft)
	if err != nil {
		return nil, err
	}

	gameName := game.Name
	if game.ID == model.OtherGameID {
		gameName = strings.TrimSpace(draft.CustomGameName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*طلب شحن جديد (حساب)* 🎮\n")
	fmt.Fprintf(&b, "------------------\n")
	fmt.Fprintf(&b, "*اللعبة:* %s\n", gameName)
	fmt.Fprintf(&b, "*العرض:* %s\n", pkg.Amount)
	fmt.Fprintf(&b, "*السعر:* %s %s\n", pkg.Price, pkg.Currency)
	fmt.Fprintf(&b, "------------------\n")
	fmt.Fprintf(&b, "*تفاصيل الحساب:*\n")
	fmt.Fprintf(&b, "*البريد:* %s\n", draft.Email)
	fmt.Fprintf(&b, "*الدولة:* %s\n", draft.Country)
	fmt.Fprintf(&b, "*المدينة:* %s\n", draft.City)
	fmt.Fprintf(&b, "------------------\n")
	fmt.Fprintf(&b, "أرجو تنفيذ الطلب!")
	payload := b.String()

	q := url.Values{}
	q.Set("text", payload)
	channelURL := "https://wa.me/" + s.whatsappNumber + "?" + q.Encode()

	if s.notifier != nil {
		s.notifier.OrderPlaced(gameName, pkg, draft)
	}

	return &model.OrderDispatch{PayloadText: payload, ChannelURL: channelURL}, nil
}
