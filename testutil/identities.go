package testutil

import (
	"foodapp-api/access"
	"foodapp-api/models"
)

// Identities of the seeded accounts, as a verified token would carry them.
var (
	Admin = access.Identity{UserID: AdminID, Email: "nick@slooze.xyz", Role: models.RoleAdmin, Country: models.CountryIndia}

	ManagerIndia = access.Identity{UserID: ManagerIndiaID, Email: "carol@slooze.xyz", Role: models.RoleManager, Country: models.CountryIndia}
	ManagerUS    = access.Identity{UserID: ManagerUSID, Email: "steve@slooze.xyz", Role: models.RoleManager, Country: models.CountryAmerica}

	MemberIndia  = access.Identity{UserID: MemberIndiaID, Email: "thanos@slooze.xyz", Role: models.RoleMember, Country: models.CountryIndia}
	MemberIndia2 = access.Identity{UserID: MemberIndia2ID, Email: "thor@slooze.xyz", Role: models.RoleMember, Country: models.CountryIndia}
	MemberUS     = access.Identity{UserID: MemberUSID, Email: "travis@slooze.xyz", Role: models.RoleMember, Country: models.CountryAmerica}
)
