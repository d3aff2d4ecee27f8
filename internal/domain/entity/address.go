// Package entity contains the core business objects of the project.
package entity

// DeviceAddress is the postal address bound to an Alexa device.
// A nil field means the Device Address API returned no value, which is not the same as an empty string.
type DeviceAddress struct {
	CountryCode *string // ISO 3166 alpha-2 country code, e.g. "GB".
	PostalCode  *string // Postcode as entered by the customer, e.g. "CO4 3ZZ".
}

// IsEmpty reports whether neither the country code nor the postal code is known.
func (a *DeviceAddress) IsEmpty() bool {
	return a == nil || (a.CountryCode == nil && a.PostalCode == nil)
}

// Country returns the country code or "" when it is absent.
func (a *DeviceAddress) Country() string {
	if a == nil || a.CountryCode == nil {
		return ""
	}

	return *a.CountryCode
}

// DeviceCall identifies the device a request came from and how to reach the Alexa APIs on its behalf.
type DeviceCall struct {
	DeviceID       string // Device identifier from context.System.device.
	APIEndpoint    string // Regional Alexa API endpoint, e.g. "https://api.eu.amazonalexa.com".
	APIAccessToken string // Short-lived token authorising calls to the Alexa APIs.
}
