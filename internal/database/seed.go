package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type seedCountry struct {
	name   string
	states []string
}

// Reference data served by the countries-with-states endpoint.
var seedCountries = []seedCountry{
	{"USA", []string{
		"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut",
		"Delaware", "Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
		"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan",
		"Minnesota", "Mississippi", "Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire",
		"New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
		"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
		"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington", "West Virginia",
		"Wisconsin", "Wyoming", "District of Columbia",
	}},
	{"Canada", []string{
		"Alberta", "British Columbia", "Manitoba", "New Brunswick", "Newfoundland and Labrador",
		"Northwest Territories", "Nova Scotia", "Nunavut", "Ontario", "Prince Edward Island",
		"Quebec", "Saskatchewan", "Yukon",
	}},
	{"India", []string{
		"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh", "Goa", "Gujarat",
		"Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka", "Kerala", "Madhya Pradesh",
		"Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
		"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand",
		"West Bengal", "Andaman and Nicobar Islands", "Chandigarh", "Dadra and Nagar Haveli and Daman and Diu",
		"Delhi", "Jammu and Kashmir", "Ladakh", "Lakshadweep", "Puducherry",
	}},
	{"United Kingdom", []string{
		"England", "Scotland", "Wales", "Northern Ireland",
	}},
	{"Australia", []string{
		"New South Wales", "Queensland", "South Australia", "Tasmania", "Victoria", "Western Australia",
		"Australian Capital Territory", "Northern Territory",
	}},
	{"Brazil", []string{
		"Acre", "Alagoas", "Amapá", "Amazonas", "Bahia", "Ceará", "Espírito Santo", "Goiás", "Maranhão",
		"Mato Grosso", "Mato Grosso do Sul", "Minas Gerais", "Pará", "Paraíba", "Paraná", "Pernambuco",
		"Piauí", "Rio de Janeiro", "Rio Grande do Norte", "Rio Grande do Sul", "Rondônia", "Roraima",
		"Santa Catarina", "São Paulo", "Sergipe", "Tocantins", "Federal District",
	}},
	{"China", []string{
		"Anhui", "Beijing", "Chongqing", "Fujian", "Gansu", "Guangdong", "Guangxi", "Guizhou", "Hainan",
		"Hebei", "Heilongjiang", "Henan", "Hong Kong", "Hubei", "Hunan", "Inner Mongolia", "Jiangsu",
		"Jiangxi", "Jilin", "Liaoning", "Macau", "Ningxia", "Qinghai", "Shaanxi", "Shandong", "Shanghai",
		"Shanxi", "Sichuan", "Taiwan", "Tianjin", "Tibet", "Xinjiang", "Yunnan", "Zhejiang",
	}},
	{"Germany", []string{
		"Baden-Württemberg", "Bavaria", "Berlin", "Brandenburg", "Bremen", "Hamburg", "Hesse",
		"Lower Saxony", "Mecklenburg-Vorpommern", "North Rhine-Westphalia", "Rhineland-Palatinate",
		"Saarland", "Saxony", "Saxony-Anhalt", "Schleswig-Holstein", "Thuringia",
	}},
	{"France", []string{
		"Auvergne-Rhône-Alpes", "Bourgogne-Franche-Comté", "Brittany", "Centre-Val de Loire", "Corsica",
		"Grand Est", "Hauts-de-France", "Île-de-France", "Normandy", "Nouvelle-Aquitaine", "Occitanie",
		"Pays de la Loire", "Provence-Alpes-Côte d'Azur", "Guadeloupe", "Martinique", "French Guiana",
		"Réunion", "Mayotte",
	}},
	{"Japan", []string{
		"Hokkaido", "Aomori", "Iwate", "Miyagi", "Akita", "Yamagata", "Fukushima", "Ibaraki", "Tochigi",
		"Gunma", "Saitama", "Chiba", "Tokyo", "Kanagawa", "Niigata", "Toyama", "Ishikawa", "Fukui",
		"Yamanashi", "Nagano", "Gifu", "Shizuoka", "Aichi", "Mie", "Shiga", "Kyoto", "Osaka", "Hyogo",
		"Nara", "Wakayama", "Tottori", "Shimane", "Okayama", "Hiroshima", "Yamaguchi", "Tokushima",
		"Kagawa", "Ehime", "Kochi", "Fukuoka", "Saga", "Nagasaki", "Kumamoto", "Oita", "Miyazaki",
		"Kagoshima", "Okinawa",
	}},
	{"South Africa", []string{
		"Eastern Cape", "Free State", "Gauteng", "KwaZulu-Natal", "Limpopo", "Mpumalanga",
		"North West", "Northern Cape", "Western Cape",
	}},
	{"Mexico", []string{
		"Aguascalientes", "Baja California", "Baja California Sur", "Campeche", "Chiapas", "Chihuahua",
		"Coahuila", "Colima", "Durango", "Guanajuato", "Guerrero", "Hidalgo", "Jalisco", "Mexico City",
		"México", "Michoacán", "Morelos", "Nayarit", "Nuevo León", "Oaxaca", "Puebla", "Querétaro",
		"Quintana Roo", "San Luis Potosí", "Sinaloa", "Sonora", "Tabasco", "Tamaulipas", "Tlaxcala",
		"Veracruz", "Yucatán", "Zacatecas",
	}},
	{"Italy", []string{
		"Abruzzo", "Aosta Valley", "Apulia", "Basilicata", "Calabria", "Campania", "Emilia-Romagna",
		"Friuli Venezia Giulia", "Lazio", "Liguria", "Lombardy", "Marche", "Molise", "Piedmont",
		"Sardinia", "Sicily", "Trentino-South Tyrol", "Tuscany", "Umbria", "Veneto",
	}},
	{"Spain", []string{
		"Andalusia", "Aragon", "Asturias", "Balearic Islands", "Basque Country", "Canary Islands",
		"Cantabria", "Castile and León", "Castilla–La Mancha", "Catalonia", "Extremadura", "Galicia",
		"Community of Madrid", "Region of Murcia", "Navarre", "La Rioja", "Valencian Community",
		"Ceuta", "Melilla",
	}},
	{"Russia", []string{
		"Adygea", "Altai Krai", "Altai Republic", "Amur Oblast", "Arkhangelsk Oblast", "Astrakhan Oblast",
		"Bashkortostan", "Belgorod Oblast", "Bryansk Oblast", "Buryatia", "Chechen Republic", "Chelyabinsk Oblast",
		"Chukotka Autonomous Okrug", "Chuvashia", "Crimea", "Dagestan", "Ingushetia", "Irkutsk Oblast",
		"Ivanovo Oblast", "Jewish Autonomous Oblast", "Kabardino-Balkaria", "Kaliningrad Oblast", "Kalmykia",
		"Kaluga Oblast", "Kamchatka Krai", "Karachay-Cherkessia", "Karelia", "Kemerovo Oblast", "Khabarovsk Krai",
		"Khakassia", "Khanty-Mansi Autonomous Okrug", "Kirov Oblast", "Komi Republic", "Kostroma Oblast",
		"Krasnodar Krai", "Krasnoyarsk Krai", "Kurgan Oblast", "Kursk Oblast", "Leningrad Oblast", "Lipetsk Oblast",
		"Magadan Oblast", "Mari El Republic", "Moscow", "Moscow Oblast", "Murmansk Oblast", "Nenets Autonomous Okrug",
		"Nizhny Novgorod Oblast", "North Ossetia-Alania", "Novgorod Oblast", "Novosibirsk Oblast", "Omsk Oblast",
		"Orenburg Oblast", "Oryol Oblast", "Penza Oblast", "Perm Krai", "Primorsky Krai", "Pskov Oblast",
		"Rostov Oblast", "Ryazan Oblast", "Saint Petersburg", "Sakha Republic", "Sakhalin Oblast", "Samara Oblast",
		"Saratov Oblast", "Sevastopol", "Smolensk Oblast", "Stavropol Krai", "Sverdlovsk Oblast", "Tambov Oblast",
		"Tatarstan", "Tomsk Oblast", "Tula Oblast", "Tuva Republic", "Tver Oblast", "Tyumen Oblast",
		"Udmurt Republic", "Ulyanovsk Oblast", "Vladimir Oblast", "Volgograd Oblast", "Vologda Oblast",
		"Voronezh Oblast", "Yamalo-Nenets Autonomous Okrug", "Yaroslavl Oblast", "Zabaykalsky Krai",
	}},
}

// SeedGeo populates the countries and states tables on first startup.
// A non-empty countries table means seeding already happened.
func (db *DB) SeedGeo(ctx context.Context) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM countries`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	err := db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, c := range seedCountries {
			var countryID int64
			row := tx.QueryRowContext(ctx, `
				INSERT INTO countries (name) VALUES ($1) RETURNING id
			`, c.name)
			if err := row.Scan(&countryID); err != nil {
				return err
			}

			for _, s := range c.states {
				if _, err := tx.ExecContext(ctx, `
					INSERT INTO states (name, country_id) VALUES ($1, $2)
				`, s, countryID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Int("countries", len(seedCountries)).Msg("seeded reference data")
	return nil
}
