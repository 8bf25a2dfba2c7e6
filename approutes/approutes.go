// Package approutes defines the route table of the book marketplace.
package approutes

import (
	"github.com/cccteam/ccc/accesstypes"
	"github.com/cccteam/routeaccess/routetypes"
	"github.com/cccteam/routeaccess/sessioninfo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ManageTranslations lets a non-moderator work the translation dashboard.
const ManageTranslations accesstypes.Permission = "ManageTranslations"

// Name identifies a route of the marketplace.
type Name int

// Routes of the marketplace.
const (
	Home Name = iota
	Catalog
	BookDetail
	Cart
	WishList
	Orders
	OrderDetail
	Checkout
	Login
	Register
	Activate
	PasswordReset
	Profile
	SchoolProfile
	PublisherProfile
	InstitutionProfile
	PublisherBooks
	Moderation
	Translations
	Notifications

	nameCount
)

type definition struct {
	key        string
	path       string
	visibility routetypes.Visibility
	check      routetypes.PermissionCheck
	title      string
}

var definitions = [nameCount]definition{
	Home:               {key: "home", path: "/", visibility: routetypes.Public, title: "Home"},
	Catalog:            {key: "catalog", path: "/books/", visibility: routetypes.Public, title: "Catalog"},
	BookDetail:         {key: "bookDetail", path: "/books/:bookId/", visibility: routetypes.Public, title: "Book details"},
	Cart:               {key: "cart", path: "/cart/", visibility: routetypes.RequiresAuth, check: buyer, title: "Cart"},
	WishList:           {key: "wishList", path: "/wishlist/", visibility: routetypes.RequiresAuth, check: buyer, title: "Wish List"},
	Orders:             {key: "orders", path: "/orders/", visibility: routetypes.RequiresAuth, check: buyer, title: "My orders"},
	OrderDetail:        {key: "orderDetail", path: "/orders/:orderId/", visibility: routetypes.RequiresAuth, check: buyer, title: "Order details"},
	Checkout:           {key: "checkout", path: "/checkout/", visibility: routetypes.RequiresAuth, check: buyer, title: "Checkout"},
	Login:              {key: "login", path: "/login/", visibility: routetypes.RequiresAnonymous, title: "Login"},
	Register:           {key: "register", path: "/register/", visibility: routetypes.RequiresAnonymous, title: "Register"},
	Activate:           {key: "activate", path: "/activate/:userId/:token/", visibility: routetypes.RequiresAnonymous, title: "Activate account"},
	PasswordReset:      {key: "passwordReset", path: "/password-reset/:userId/:token/", visibility: routetypes.RequiresAnonymous, title: "Reset password"},
	Profile:            {key: "profile", path: "/profile/", visibility: routetypes.RequiresAuth, title: "Profile"},
	SchoolProfile:      {key: "schoolProfile", path: "/profile/school/", visibility: routetypes.RequiresAuth, check: userType(sessioninfo.SchoolAdmin), title: "School profile"},
	PublisherProfile:   {key: "publisherProfile", path: "/profile/publisher/", visibility: routetypes.RequiresAuth, check: userType(sessioninfo.Publisher), title: "Publisher profile"},
	InstitutionProfile: {key: "institutionProfile", path: "/profile/institution/", visibility: routetypes.RequiresAuth, check: userType(sessioninfo.InstitutionalUser), title: "Institution profile"},
	PublisherBooks:     {key: "publisherBooks", path: "/publisher/books/", visibility: routetypes.RequiresAuth, check: userType(sessioninfo.Publisher), title: "My books"},
	Moderation:         {key: "moderation", path: "/moderation/", visibility: routetypes.RequiresAuth, check: userType(sessioninfo.Moderator), title: "Moderation"},
	Translations:       {key: "translations", path: "/translations/", visibility: routetypes.RequiresAuth, check: translator, title: "Translations"},
	Notifications:      {key: "notifications", path: "/notifications/", visibility: routetypes.RequiresAuth, title: "Notifications"},
}

// String returns the route key used in links and logs.
func (n Name) String() string {
	if n < 0 || n >= nameCount {
		return "unknown"
	}

	return definitions[n].key
}

// buyer excludes the accounts that cannot place orders.
func buyer(u *sessioninfo.User) bool {
	return u.Type != sessioninfo.Moderator && u.Type != sessioninfo.Publisher
}

func userType(t sessioninfo.UserType) routetypes.PermissionCheck {
	return func(u *sessioninfo.User) bool {
		return u.Type == t
	}
}

func translator(u *sessioninfo.User) bool {
	return u.Type == sessioninfo.Moderator || u.HasPermission(ManageTranslations)
}

// Table is the route table for one display language.
type Table struct {
	tag    language.Tag
	routes [nameCount]routetypes.Descriptor
}

// New returns the route table with titles in the language best matching tag.
// Unsupported languages get English titles.
func New(tag language.Tag) *Table {
	_, idx, _ := matcher.Match(tag)
	t := &Table{tag: supported[idx]}

	p := message.NewPrinter(t.tag, message.Catalog(titles))
	for n, d := range definitions {
		t.routes[n] = routetypes.Descriptor{
			Name:            d.key,
			PathTemplate:    d.path,
			Visibility:      d.visibility,
			PermissionCheck: d.check,
			Title:           routetypes.Text(p.Sprintf(d.title)),
		}
	}

	return t
}

// Language returns the display language of the table.
func (t *Table) Language() language.Tag {
	return t.tag
}

// Route returns the descriptor for n.
func (t *Table) Route(n Name) routetypes.Descriptor {
	return t.routes[n]
}

// All returns every descriptor in Name order.
func (t *Table) All() []routetypes.Descriptor {
	all := make([]routetypes.Descriptor, len(t.routes))
	copy(all, t.routes[:])

	return all
}
