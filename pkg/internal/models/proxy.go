package models

// ProxyWhitelistDomain holds a registrable domain allowed through the media proxy.
type ProxyWhitelistDomain struct {
	BaseModel

	Domain string `json:"domain" gorm:"uniqueIndex"`
}

// ProxyBlacklistedDomain holds a registrable domain explicitly refused by the
// media proxy. Populated by the import management command.
type ProxyBlacklistedDomain struct {
	BaseModel

	Domain string `json:"domain" gorm:"uniqueIndex"`
}
