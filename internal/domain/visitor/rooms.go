package visitor

// ===============================
// Salas
// ===============================

// RoomCapacity é o teto de visitantes ativos por sala.
const RoomCapacity = 3

var Rooms = []string{
	"Sala 1",
	"Sala 2",
	"Sala 3",
	"Sala 4",
	"Sala 5",
}

func IsValidRoom(room string) bool {
	for _, r := range Rooms {
		if r == room {
			return true
		}
	}
	return false
}
