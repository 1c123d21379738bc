package passphrase

// wordlist is the pool words are drawn from. Short, common, unambiguous
// English nouns and numbers; 128 entries gives 7 bits per word.
var wordlist = []string{
	"acorn", "amber", "anchor", "apple", "arrow", "aspen", "atlas", "autumn",
	"badge", "basil", "beacon", "birch", "blaze", "breeze", "bridge", "brook",
	"cabin", "candle", "canyon", "cedar", "charm", "cliff", "clover", "coral",
	"crane", "creek", "crystal", "cypress", "daisy", "dawn", "delta", "drift",
	"eagle", "ember", "fable", "falcon", "feather", "fern", "field", "flame",
	"flint", "forest", "fox", "frost", "garnet", "glacier", "glen", "grove",
	"harbor", "hazel", "heron", "hollow", "horizon", "island", "ivory", "ivy",
	"jade", "juniper", "kestrel", "lagoon", "lantern", "laurel", "lily", "linden",
	"lotus", "lunar", "maple", "marble", "meadow", "mesa", "mist", "monarch",
	"moss", "nectar", "north", "oasis", "ocean", "olive", "onyx", "opal",
	"orbit", "orchid", "osprey", "otter", "pearl", "pebble", "pine", "plume",
	"prairie", "quartz", "quill", "raven", "reef", "ridge", "river", "robin",
	"rowan", "saffron", "sage", "seven", "shadow", "shore", "sierra", "silver",
	"sparrow", "spruce", "stone", "storm", "summit", "sunset", "swan", "thistle",
	"thorn", "tide", "timber", "topaz", "trail", "tulip", "tundra", "umber",
	"valley", "velvet", "violet", "walnut", "willow", "winter", "wren", "zephyr",
}
