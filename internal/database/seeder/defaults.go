package seeder

import appseeder "skill-gap/internal/seeder"

func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
		CatalogSourcesSeeder{},
		appseeder.EmployeeSeeder{},
		appseeder.JobSeeder{},
		appseeder.CourseSeeder{},
	}
}
