package translation

// Dictionary is a static nested mapping of source language -> target
// language -> phrase -> translation, used as the last-resort translation
// strategy. It is built once at startup and read-only afterwards.
//
// Partial matching iterates phrases in their definition order, so the
// ordered key slices are kept alongside the lookup maps.
type Dictionary struct {
	entries map[string]map[string]map[string]string
	order   map[string]map[string][]string
}

type phraseEntry struct {
	phrase      string
	translation string
}

// Common taxi phrases, full phrases first, then single words so exact and
// partial matches win before word-by-word substitution.
var enToZulu = []phraseEntry{
	{"hello", "Sawubona"},
	{"how much is the fare", "Imalini imali yokuhamba?"},
	{"thank you", "Ngiyabonga"},
	{"where are you going", "Uya kuphi?"},
	{"please stop here", "Ngicela uma lapha"},
	{"this is your stop", "Lena indawo yakho yokuma"},
	{"exact change please", "Ngicela ushintshe olungokoqobo"},
	{"buckle your seatbelt", "Bopha ibhande lakho lomhlalo"},
	{"next stop coming up", "Isiteshi esilandelayo sizofika"},
	{"how long until we arrive", "Sizofika nini?"},
	{"please move to the back", "Ngicela uhambele emuva"},
	{"watch your step", "Qaphela ukunyathela kwakho"},
	{"good morning", "Sawubona ekuseni"},
	{"good afternoon", "Sawubona emini"},
	{"have a nice day", "Ube nosuku oluhle"},
	{"welcome", "Wamukelekile"},
	{"please sit down", "Ngicela uhlale phansi"},
	{"the bus is full", "Ibasi igcwele"},
	{"we will arrive soon", "Sizofika maduze"},
	{"please be patient", "Ngicela ube nokubekezela"},
	{"how much", "Malini"},
	{"fare", "Imali yokuhamba"},
	{"stop", "Uma"},
	{"here", "Lapha"},
	{"where", "Kuphi"},
	{"going", "Ukuya"},
	{"thank", "Bonga"},
	{"please", "Ngiyacela"},
	{"bus", "Ibasi"},
	{"taxi", "Tekisi"},
	{"money", "Imali"},
	{"change", "Ushintshi"},
	{"seatbelt", "Ibhande lomhlalo"},
	{"next", "Olandelayo"},
	{"arrive", "Fika"},
	{"soon", "Maduze"},
	{"move", "Hamba"},
	{"back", "Emuva"},
	{"watch", "Qaphela"},
	{"step", "Inyathelo"},
	{"good", "Kuhle"},
	{"morning", "Ekuseni"},
	{"afternoon", "Emini"},
	{"day", "Usuku"},
	{"nice", "Kuhle"},
	{"sit", "Hlala"},
	{"down", "Phansi"},
	{"full", "Gcwele"},
	{"patient", "Bekezela"},
}

var enToXhosa = []phraseEntry{
	{"hello", "Molo"},
	{"how much is the fare", "Yimalini ifare?"},
	{"thank you", "Enkosi"},
	{"where are you going", "Uya phi?"},
	{"please stop here", "Ndicela umise apha"},
	{"this is your stop", "Le yistop sakho"},
	{"exact change please", "Nceda utshintshe ngokuchanekileyo"},
	{"buckle your seatbelt", "Bopha ibhande lakho lesitulo"},
	{"next stop coming up", "Istophu elandelayo iza"},
	{"how long until we arrive", "Siza kufika nini?"},
	{"please move to the back", "Nceda uhambise ngasemva"},
	{"watch your step", "Gcina inyathelo lakho"},
	{"good morning", "Molo ekuseni"},
	{"good afternoon", "Molo emva kwemini"},
	{"have a nice day", "Ube nosuku olumnandi"},
	{"welcome", "Wamkelekile"},
	{"please sit down", "Nceda uhlale phantsi"},
	{"the bus is full", "Ibhasi izalisekile"},
	{"we will arrive soon", "Siza kufika kungekudala"},
	{"please be patient", "Nceda ube nombeko"},
}

var enToAfrikaans = []phraseEntry{
	{"hello", "Hallo"},
	{"how much is the fare", "Hoeveel is die tarief?"},
	{"thank you", "Dankie"},
	{"where are you going", "Waar gaan jy heen?"},
	{"please stop here", "Stop hier asseblief"},
	{"this is your stop", "Dit is jou stop"},
	{"exact change please", "Presiese kleingeld asseblief"},
	{"buckle your seatbelt", "Maat jou sitplekgordel vas"},
	{"next stop coming up", "Volgende stop kom nou"},
	{"how long until we arrive", "Hoe lank tot ons aankom?"},
	{"please move to the back", "Skuif asseblief agtertoe"},
	{"watch your step", "Pas op waar jy trap"},
	{"good morning", "Goeie môre"},
	{"good afternoon", "Goeie middag"},
	{"have a nice day", "Geniet die dag"},
	{"welcome", "Welkom"},
	{"please sit down", "Gaan sit asseblief"},
	{"the bus is full", "Die bus is vol"},
	{"we will arrive soon", "Ons sal binnekort aankom"},
	{"please be patient", "Wees asseblief geduldig"},
}

// NewDictionary builds the packaged phrase dictionary.
func NewDictionary() *Dictionary {
	d := &Dictionary{
		entries: make(map[string]map[string]map[string]string),
		order:   make(map[string]map[string][]string),
	}
	d.add("en", "zu", enToZulu)
	d.add("en", "xh", enToXhosa)
	d.add("en", "af", enToAfrikaans)
	return d
}

func (d *Dictionary) add(source, target string, pairs []phraseEntry) {
	if d.entries[source] == nil {
		d.entries[source] = make(map[string]map[string]string)
		d.order[source] = make(map[string][]string)
	}
	table := make(map[string]string, len(pairs))
	keys := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if _, seen := table[p.phrase]; !seen {
			keys = append(keys, p.phrase)
		}
		table[p.phrase] = p.translation
	}
	d.entries[source][target] = table
	d.order[source][target] = keys
}

// Lookup returns the translation for an exact phrase or word key. Keys are
// expected lowercase and trimmed. An unsupported language pair yields no
// match, not an error.
func (d *Dictionary) Lookup(sourceLang, targetLang, key string) (string, bool) {
	targets, ok := d.entries[sourceLang]
	if !ok {
		return "", false
	}
	table, ok := targets[targetLang]
	if !ok {
		return "", false
	}
	translation, ok := table[key]
	return translation, ok
}

// Phrases returns the phrase keys for a language pair in definition order.
func (d *Dictionary) Phrases(sourceLang, targetLang string) []string {
	targets, ok := d.order[sourceLang]
	if !ok {
		return nil
	}
	return targets[targetLang]
}

// HasPair reports whether any entries exist for the language pair.
func (d *Dictionary) HasPair(sourceLang, targetLang string) bool {
	targets, ok := d.entries[sourceLang]
	if !ok {
		return false
	}
	_, ok = targets[targetLang]
	return ok
}
