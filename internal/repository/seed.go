package repository

import "github.com/jthmssse/saisonnales-app-v2/internal/domain"

// SeedResidents returns the default resident set used when the store holds no
// usable data: the 2025 summer season roster, one resident per room.
func SeedResidents() []domain.Resident {
	return []domain.Resident{
		{ID: 1, Name: "BONAVITA Joseph", Room: "1", GIR: "GIR 4", Status: domain.StatusActive, Arrival: "2025-07-07", Departure: "2025-08-07", Phone: "N/A", QuoteSent: true, BirthDate: "1948-04-03", ImageRights: "oui"},
		{ID: 2, Name: "SACHOT Huguette", Room: "2", GIR: "GIR 6", Status: domain.StatusActive, Arrival: "2025-07-03", Departure: "2025-07-25", Phone: "N/A", QuoteSent: true, BirthDate: "1943-08-28", ImageRights: "oui sauf réseaux sociaux"},
		{ID: 3, Name: "TRICHEREAU Marie Josèphe", Room: "3", GIR: "GIR 5", Status: domain.StatusActive, Arrival: "2025-06-13", Departure: "2025-09-13", Phone: "N/A", QuoteSent: true, BirthDate: "1946-08-26", ImageRights: "oui sauf réseaux sociaux"},
		{ID: 4, Name: "VINET Marie Madeleine", Room: "4", GIR: "GIR 4", Status: domain.StatusActive, Arrival: "2025-06-11", Departure: "2025-09-11", Phone: "N/A", QuoteSent: true, BirthDate: "1939-03-22", ImageRights: "oui sauf réseaux sociaux"},
		{ID: 5, Name: "GIRARD Marie Josèphe", Room: "5", GIR: "GIR 4", Status: domain.StatusActive, Arrival: "2025-06-13", Departure: "2025-09-13", Phone: "N/A", QuoteSent: true, BirthDate: "1936-12-01", ImageRights: "oui sauf réseaux sociaux"},
		{ID: 6, Name: "PBEAU Michelle", Room: "6", GIR: "GIR 4", Status: domain.StatusActive, Arrival: "2025-04-10", Departure: "2025-09-13", Phone: "N/A", QuoteSent: true, BirthDate: "1935-07-03", ImageRights: "non"},
		{ID: 7, Name: "LAPORTE André", Room: "7", GIR: "GIR 4", Status: domain.StatusActive, Arrival: "2025-04-14", Departure: "2025-08-15", Phone: "N/A", QuoteSent: true, BirthDate: "1936-08-28", ImageRights: "oui"},
		{ID: 8, Name: "GOURAUD Georgette", Room: "8", GIR: "GIR 5", Status: domain.StatusActive, Arrival: "2025-07-11", Departure: "2025-07-23", Phone: "N/A", QuoteSent: true, BirthDate: "1938-01-18", ImageRights: "oui sauf réseaux sociaux"},
		{ID: 9, Name: "RAVELEAU Daniel", Room: "9", GIR: "GIR 4", Status: domain.StatusActive, Arrival: "2025-06-11", Departure: "2025-07-23", Phone: "N/A", QuoteSent: true, BirthDate: "1958-09-16", ImageRights: "oui sauf réseaux sociaux"},
		{ID: 10, Name: "LUCAS Chantal", Room: "10", GIR: "GIR 6", Status: domain.StatusActive, Arrival: "2025-05-14", Departure: "2025-08-15", Phone: "N/A", QuoteSent: true, BirthDate: "1943-03-23", ImageRights: "non"},
		{ID: 11, Name: "BERNARD Gilbert", Room: "11", GIR: "GIR 4", Status: domain.StatusActive, Arrival: "2025-03-12", Departure: "2025-09-12", Phone: "N/A", QuoteSent: true, BirthDate: "1927-10-20", ImageRights: "non"},
		{ID: 12, Name: "ALLEMAND Guy", Room: "12", GIR: "GIR 3", Status: domain.StatusActive, Arrival: "2025-05-20", Departure: "2025-07-31", Phone: "N/A", QuoteSent: true, BirthDate: "1940-12-09", ImageRights: "oui sauf réseaux sociaux"},
		{ID: 13, Name: "VALTON Andrée", Room: "13", GIR: "GIR 5", Status: domain.StatusActive, Arrival: "2025-07-15", Departure: "2025-09-11", Phone: "N/A", QuoteSent: true, BirthDate: "1944-01-02", ImageRights: "oui"},
		{ID: 14, Name: "ZEELEN Bernadette", Room: "14", GIR: "GIR 4", Status: domain.StatusActive, Arrival: "2025-06-23", Departure: "2025-09-23", Phone: "N/A", QuoteSent: true, BirthDate: "1933-02-26", ImageRights: "oui sauf réseaux sociaux"},
		{ID: 15, Name: "BILLAUD Louis", Room: "15", GIR: "GIR 4", Status: domain.StatusActive, Arrival: "2025-01-15", Departure: "2025-08-17", Phone: "N/A", QuoteSent: true, BirthDate: "1952-02-23", ImageRights: "oui sauf réseaux sociaux"},
		{ID: 16, Name: "JEANNEAU Christiane", Room: "16", GIR: "GIR 6", Status: domain.StatusActive, Arrival: "2025-04-22", Departure: "2025-07-21", Phone: "N/A", QuoteSent: true, BirthDate: "1947-08-23", ImageRights: "oui sauf réseaux sociaux"},
		{ID: 17, Name: "COUTAND Gérard", Room: "17", GIR: "GIR 4", Status: domain.StatusActive, Arrival: "2025-07-07", Departure: "2025-08-07", Phone: "N/A", QuoteSent: true, BirthDate: "1942-12-06", ImageRights: "oui"},
		{ID: 18, Name: "GARAUD Ginette", Room: "18", GIR: "GIR 4", Status: domain.StatusActive, Arrival: "2025-04-03", Departure: "2025-09-06", Phone: "N/A", QuoteSent: true, BirthDate: "1938-09-21", ImageRights: "oui sauf réseaux sociaux"},
		{ID: 19, Name: "JAMIN Bruno", Room: "19", GIR: "GIR 2", Status: domain.StatusActive, Arrival: "2025-03-03", Departure: "2025-09-04", Phone: "N/A", QuoteSent: true, BirthDate: "1955-03-19", ImageRights: "non"},
		{ID: 20, Name: "GARAUD Jean", Room: "20", GIR: "GIR 3", Status: domain.StatusActive, Arrival: "2025-03-06", Departure: "2025-09-06", Phone: "N/A", QuoteSent: true, BirthDate: "1936-10-26", ImageRights: "oui"},
		{ID: 21, Name: "GILBERT Marie-Cécile", Room: "21", GIR: "GIR 6", Status: domain.StatusActive, Arrival: "2025-07-04", Departure: "2025-09-04", Phone: "N/A", QuoteSent: true, BirthDate: "1940-11-19", ImageRights: "oui sauf réseaux sociaux"},
		{ID: 22, Name: "BORDRON Lucienne", Room: "22", GIR: "GIR 5", Status: domain.StatusActive, Arrival: "2025-06-16", Departure: "2025-07-31", Phone: "N/A", QuoteSent: true, BirthDate: "1934-04-21", ImageRights: "oui"},
		{ID: 23, Name: "RONDEAU Marie Thérèse", Room: "23", GIR: "GIR 3", Status: domain.StatusActive, Arrival: "2025-05-22", Departure: "2025-08-28", Phone: "N/A", QuoteSent: true, BirthDate: "1942-01-28", ImageRights: "oui"},
		{ID: 24, Name: "LEBRETON André", Room: "24", GIR: "GIR 2", Status: domain.StatusActive, Arrival: "2025-06-05", Departure: "2025-09-05", Phone: "N/A", QuoteSent: true, BirthDate: "1937-08-03", ImageRights: "oui"},
	}
}

// SeedCommunications returns the default message template catalog.
func SeedCommunications() []domain.Communication {
	return []domain.Communication{
		{ID: 1, Type: "Email de Bienvenue", Status: "À la confirmation", Subject: "Bienvenue à la Saisonnale d'Aizenay !", Description: "Votre séjour est confirmé. Nous sommes ravis de vous accueillir prochainement.", Active: true},
		{ID: 2, Type: "Rappel J-7", Status: "J-7", Subject: "Votre arrivée approche !", Description: "L'équipe de la Saisonnale est prête à vous accueillir. N'hésitez pas si vous avez des questions.", Active: true},
		{ID: 3, Type: "Préparation du séjour", Status: "J-15", Subject: "Plus que 15 jours avant votre séjour !", Description: "Voici quelques informations utiles pour préparer votre arrivée à la Saisonnale.", Active: true},
		{ID: 4, Type: "Message Jour J", Status: "Jour J (pour la famille)", Subject: "Bienvenue à M./Mme [Nom du résident]", Description: "C'est le grand jour ! Bienvenue à votre proche au sein de notre résidence.", Active: true},
	}
}
