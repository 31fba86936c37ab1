package view

import (
	"strings"

	"github.com/aidanlsb/cardboard/internal/vcard"
)

var labels = map[vcard.PropertyName]string{
	vcard.Source:             "Source",
	vcard.Kind:               "Kind",
	vcard.Name:               "Directory name",
	vcard.FormattedName:      "Full name",
	vcard.StructuredName:     "Name",
	vcard.Nickname:           "Nickname",
	vcard.Photo:              "Photo",
	vcard.Birthday:           "Birthday",
	vcard.Anniversary:        "Anniversary",
	vcard.Gender:             "Gender",
	vcard.SortString:         "Sort as",
	vcard.Address:            "Address",
	vcard.Label:              "Address label",
	vcard.Telephone:          "Phone",
	vcard.Email:              "Email",
	vcard.Mailer:             "Mail client",
	vcard.IMPP:               "Messaging",
	vcard.Language:           "Language",
	vcard.TimeZone:           "Time zone",
	vcard.Geo:                "Location",
	vcard.Title:              "Job title",
	vcard.Role:               "Role",
	vcard.Logo:               "Logo",
	vcard.Agent:              "Agent",
	vcard.Organization:       "Organisation",
	vcard.Member:             "Member",
	vcard.Related:            "Related",
	vcard.Categories:         "Categories",
	vcard.Note:               "Note",
	vcard.ProductID:          "Product",
	vcard.Revision:           "Revision",
	vcard.Sound:              "Sound",
	vcard.UID:                "UID",
	vcard.ClientPIDMap:       "Client PID map",
	vcard.URL:                "Website",
	vcard.Key:                "Public key",
	vcard.Class:              "Class",
	vcard.FreeBusyURL:        "Free/busy",
	vcard.CalendarAddressURI: "Calendar address",
	vcard.CalendarURI:        "Calendar",
}

// Label returns the human label for a property name. Vendor extensions are
// shown without their prefix: X-SKYPE-USERNAME reads "Skype username".
func Label(name vcard.PropertyName) string {
	if label, ok := labels[name]; ok {
		return label
	}
	if name.IsVendor() {
		words := strings.ToLower(strings.ReplaceAll(string(name)[len(vcard.VendorPrefix):], "-", " "))
		if words != "" {
			return strings.ToUpper(words[:1]) + words[1:]
		}
	}
	return string(name)
}
