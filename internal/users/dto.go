// Package users holds the user payload and the service that returns it.
package users

// UserDTO is the user payload accepted by the HTTP API.
type UserDTO struct {
	FullName     string  `json:"fullName" yaml:"fullName" xml:"fullName" msgpack:"fullName" bson:"fullName" tidy.transform:"words" tidy.default:"Unknown User"`
	UniqueID     *string `json:"uniqueId" yaml:"uniqueId" xml:"uniqueId,omitempty" msgpack:"uniqueId" bson:"uniqueId" tidy.transform:"upper"`
	EmailAddress string  `json:"emailAddress" yaml:"emailAddress" xml:"emailAddress" msgpack:"emailAddress" bson:"emailAddress" tidy.transform:"lower" tidy.default:"noemail@example.com"`
	Address      string  `json:"address" yaml:"address" xml:"address" msgpack:"address" bson:"address" tidy.transform:"sentences" tidy.default:"Unknown Address"`
	UserDetails  string  `json:"userDetails" yaml:"userDetails" xml:"userDetails" msgpack:"userDetails" bson:"userDetails" tidy.max:"250" tidy.collapse:"false" tidy.default:"N/A"`
}

// Clone implements tidy.Cloner[UserDTO].
func (u UserDTO) Clone() UserDTO {
	if u.UniqueID != nil {
		id := *u.UniqueID
		u.UniqueID = &id
	}
	return u
}
