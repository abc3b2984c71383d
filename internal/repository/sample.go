package repository

import "addressbook/internal/model"

type sampleRecord struct {
	name, phone, email, address, remark, team string
	tags                                      []string
}

var sampleRecords = []sampleRecord{
	{"Alex Yeoh", "87438807", "alexyeoh@example.com", "Blk 30 Geylang Street 29, #06-40", "", "", []string{"friends"}},
	{"Bernice Yu", "99272758", "berniceyu@example.com", "Blk 30 Lorong 3 Serangoon Gardens, #07-18", "", "Alpha", []string{"colleagues", "friends"}},
	{"Charlotte Oliveiro", "93210283", "charlotte@example.com", "Blk 11 Ang Mo Kio Street 74, #11-04", "likes tea", "", []string{"neighbours"}},
	{"David Li", "91031282", "lidavid@example.com", "Blk 436 Serangoon Gardens Street 26, #16-43", "", "Alpha", []string{"family"}},
	{"Irfan Ibrahim", "92492021", "irfan@example.com", "Blk 47 Tampines Street 20, #17-35", "", "", []string{"classmates"}},
	{"Roy Balakrishnan", "92624417", "royb@example.com", "Blk 45 Aljunied Street 85, #11-31", "owes lunch", "Bravo", []string{"colleagues"}},
}

// SamplePersons 启动时载入的示例联系人，所有字段默认公开
func SamplePersons() []model.Person {
	persons := make([]model.Person, 0, len(sampleRecords))
	for _, r := range sampleRecords {
		persons = append(persons, r.person())
	}
	return persons
}

// 示例数据是常量，校验失败说明数据本身写错了
func (r sampleRecord) person() model.Person {
	name, err := model.NewName(r.name)
	if err != nil {
		panic(err)
	}
	phone, err := model.NewPhone(r.phone)
	if err != nil {
		panic(err)
	}
	email, err := model.NewEmail(r.email)
	if err != nil {
		panic(err)
	}
	address, err := model.NewAddress(r.address)
	if err != nil {
		panic(err)
	}
	team, err := model.NewTeamName(r.team)
	if err != nil {
		panic(err)
	}

	tags := make([]model.Tag, 0, len(r.tags))
	for _, raw := range r.tags {
		tag, err := model.NewTag(raw)
		if err != nil {
			panic(err)
		}
		tags = append(tags, tag)
	}

	return model.NewPerson(name, phone, email, address, model.NewRemark(r.remark), team, tags)
}
